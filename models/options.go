package models

// PaymentOptions holds the optional settings of a payment request. A nil
// field is left out of the request, so LINE Pay applies its own default.
type PaymentOptions struct {
	Capture                *bool
	PayType                *PayType
	Locale                 *string
	CheckConfirmURLBrowser *bool
	BranchName             *string
	BranchID               *string
}

// Body returns the wire representation of the options, grouped the way the
// LINE Pay API expects. Groups with nothing set are omitted.
func (o PaymentOptions) Body() OptionsBody {
	return OptionsBody{
		Payment: paymentGroup(o),
		Display: displayGroup(o),
		Extra:   extraGroup(o),
	}
}

func paymentGroup(o PaymentOptions) *PaymentOptionsBody {
	if o.Capture == nil && o.PayType == nil {
		return nil
	}

	group := &PaymentOptionsBody{Capture: copyBool(o.Capture)}
	if o.PayType != nil {
		payType := o.PayType.String()
		group.PayType = &payType
	}
	return group
}

func displayGroup(o PaymentOptions) *DisplayOptionsBody {
	if o.Locale == nil && o.CheckConfirmURLBrowser == nil {
		return nil
	}

	return &DisplayOptionsBody{
		Locale:                 copyString(o.Locale),
		CheckConfirmURLBrowser: copyBool(o.CheckConfirmURLBrowser),
	}
}

func extraGroup(o PaymentOptions) *ExtraOptionsBody {
	if o.BranchName == nil && o.BranchID == nil {
		return nil
	}

	return &ExtraOptionsBody{
		BranchName: copyString(o.BranchName),
		BranchID:   copyString(o.BranchID),
	}
}
