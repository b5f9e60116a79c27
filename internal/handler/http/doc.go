// Package http is the REST transport of the contract host.
//
// It wires the chi router, the request handlers of the farm contract and the
// middleware in front of them: trace IDs, access logging, gzip, bearer-token
// authentication and the body digest check on ciphertext uploads. Handlers
// validate input, call the service layer and translate service errors into
// a status code plus one of the app.Msg* bodies.
package http
