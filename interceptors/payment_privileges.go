package interceptors

import (
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/authentication"
	"github.com/companieshouse/chs.go/log"
)

// PaymentPrivilege is the API key privilege needed to take and look up payments
const PaymentPrivilege = "payment"

// PaymentPrivilegesIntercept checks that the request is made with an API key
// holding the payment privilege or elevated privileges
func PaymentPrivilegesIntercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Check headers for identity type and identity
		identityType := authentication.GetAuthorisedIdentityType(r)
		if identityType != authentication.APIKeyIdentityType {
			log.ErrorR(r, fmt.Errorf("payment privileges interceptor unauthorised: not API key identity type"), log.Data{"identity_type_used": identityType})
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		if authentication.IsKeyElevatedPrivilegesAuthorised(r) || authentication.CheckAuthorisedKeyHasPrivilege(r, PaymentPrivilege) {
			next.ServeHTTP(w, r)
			return
		}

		// If the request is not with a payment privileges API key then the request is unauthorized
		w.WriteHeader(http.StatusUnauthorized)
		log.ErrorR(r, fmt.Errorf("payment privileges interceptor unauthorised: API key lacks payment privilege"))
	})
}
