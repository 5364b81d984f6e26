package transport

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// Sign returns the X-LINE-Authorization value for a request. The signed
// message is the channel secret, the request path, the JSON body (or the
// encoded query string for GET requests) and the nonce, in that order.
func Sign(channelSecret, path, payload, nonce string) string {
	mac := hmac.New(sha256.New, []byte(channelSecret))
	mac.Write([]byte(channelSecret + path + payload + nonce))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
