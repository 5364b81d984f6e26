package models

// RedirectURLs are where LINE Pay sends the user after they approve or cancel
// a payment
type RedirectURLs struct {
	ConfirmURL     string
	CancelURL      string
	ConfirmURLType ConfirmURLType
}

// NewRedirectURLs returns redirect urls with no confirm url type set
func NewRedirectURLs(confirmURL, cancelURL string) RedirectURLs {
	return RedirectURLs{
		ConfirmURL: confirmURL,
		CancelURL:  cancelURL,
	}
}

// WithConfirmURLType returns a copy of r with the confirm url type set
func (r RedirectURLs) WithConfirmURLType(t ConfirmURLType) RedirectURLs {
	r.ConfirmURLType = t
	return r
}

// Body returns the wire representation of the redirect urls
func (r RedirectURLs) Body() RedirectURLsBody {
	return RedirectURLsBody{
		ConfirmURL:     r.ConfirmURL,
		CancelURL:      r.CancelURL,
		ConfirmURLType: r.ConfirmURLType.String(),
	}
}
