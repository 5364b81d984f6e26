package service

import (
	"errors"
	"fmt"

	"github.com/companieshouse/linepay.api.ch.gov.uk/models"
)

// NewPaymentRequest converts an incoming payment into a LINE Pay payment
// request, turning its decimal amounts into minor units. The redirect urls
// default to the configured ones. Amounts are not checked against each other
// here; that is left to Validate.
func (service *PaymentService) NewPaymentRequest(incoming models.IncomingPaymentRequest) (*RequestPayment, error) {
	currency, err := models.ParseCurrency(incoming.Currency)
	if err != nil {
		return nil, models.NewInvalidFieldError("currency", err.Error())
	}

	amount, err := models.ToMinorUnits(incoming.Amount, currency)
	if err != nil {
		return nil, models.NewInvalidFieldError("amount", err.Error())
	}

	paymentRequest := NewRequestPayment(service.LinePay).
		SetAmount(amount).
		SetCurrency(currency).
		SetOrderID(incoming.OrderID)

	for i, incomingPackage := range incoming.Packages {
		pkg, err := toPackage(incomingPackage, currency, fmt.Sprintf("packages[%d]", i))
		if err != nil {
			return nil, err
		}
		paymentRequest.AddPackage(pkg)
	}

	redirectURLs, err := service.redirectURLs(incoming.RedirectURLs)
	if err != nil {
		return nil, err
	}
	if redirectURLs != nil {
		paymentRequest.SetRedirectURLs(*redirectURLs)
	}

	if incoming.Options != nil {
		options, err := toOptions(*incoming.Options)
		if err != nil {
			return nil, err
		}
		paymentRequest.SetOptions(options)
	}

	return paymentRequest, nil
}

func (service *PaymentService) redirectURLs(incoming *models.IncomingRedirectURLs) (*models.RedirectURLs, error) {
	if incoming == nil {
		if service.Config.ConfirmURL == "" || service.Config.CancelURL == "" {
			return nil, nil
		}
		urls := models.NewRedirectURLs(service.Config.ConfirmURL, service.Config.CancelURL)
		return &urls, nil
	}

	urls := models.NewRedirectURLs(incoming.ConfirmURL, incoming.CancelURL)
	if incoming.ConfirmURLType != "" {
		confirmURLType, err := models.ParseConfirmURLType(incoming.ConfirmURLType)
		if err != nil {
			return nil, models.NewInvalidFieldError("redirect_urls.confirm_url_type", err.Error())
		}
		urls = urls.WithConfirmURLType(confirmURLType)
	}
	return &urls, nil
}

func toPackage(incoming models.IncomingPackage, currency models.Currency, path string) (*models.Package, error) {
	amount, err := models.ToMinorUnits(incoming.Amount, currency)
	if err != nil {
		return nil, models.NewInvalidFieldError(path+".amount", err.Error())
	}

	var opts []models.PackageOption
	if incoming.Name != nil {
		opts = append(opts, models.WithPackageName(*incoming.Name))
	}
	if incoming.UserFee != nil {
		fee, err := models.ToMinorUnits(*incoming.UserFee, currency)
		if err != nil {
			return nil, models.NewInvalidFieldError(path+".user_fee", err.Error())
		}
		opts = append(opts, models.WithUserFee(fee))
	}

	pkg := models.NewPackage(incoming.ID, amount, opts...)

	for j, incomingProduct := range incoming.Products {
		product, err := toProduct(incomingProduct, currency, fmt.Sprintf("%s.products[%d]", path, j))
		if err != nil {
			return nil, err
		}
		pkg.AddProduct(product)
	}

	return pkg, nil
}

func toProduct(incoming models.IncomingProduct, currency models.Currency, path string) (*models.Product, error) {
	price, err := models.ToMinorUnits(incoming.Price, currency)
	if err != nil {
		return nil, models.NewInvalidFieldError(path+".price", err.Error())
	}

	var opts []models.ProductOption
	if incoming.ID != nil {
		opts = append(opts, models.WithProductID(*incoming.ID))
	}
	if incoming.ImageURL != nil {
		opts = append(opts, models.WithImageURL(*incoming.ImageURL))
	}
	if incoming.OriginalPrice != nil {
		originalPrice, err := models.ToMinorUnits(*incoming.OriginalPrice, currency)
		if err != nil {
			return nil, models.NewInvalidFieldError(path+".original_price", err.Error())
		}
		opts = append(opts, models.WithOriginalPrice(originalPrice))
	}

	product, err := models.NewProduct(incoming.Name, incoming.Quantity, price, opts...)
	if err != nil {
		var validationErr *models.ValidationError
		if errors.As(err, &validationErr) {
			prefixed := *validationErr
			prefixed.Field = path + "." + validationErr.Field
			return nil, &prefixed
		}
		return nil, err
	}

	return product, nil
}

func toOptions(incoming models.IncomingPaymentOptions) (models.PaymentOptions, error) {
	options := models.PaymentOptions{
		Capture:                incoming.Capture,
		Locale:                 incoming.Locale,
		CheckConfirmURLBrowser: incoming.CheckConfirmURLBrowser,
		BranchName:             incoming.BranchName,
		BranchID:               incoming.BranchID,
	}

	if incoming.PayType != nil {
		payType, err := models.ParsePayType(*incoming.PayType)
		if err != nil {
			return options, models.NewInvalidFieldError("options.pay_type", err.Error())
		}
		options.PayType = &payType
	}

	return options, nil
}
