package handshake

import "errors"

// Typed errors
var (
	errHandshakeMessageUnset               = errors.New("handshake message unset, unable to marshal")
	errBufferTooSmall                      = errors.New("buffer is too small")
	errLengthMismatch                      = errors.New("data length and declared length do not match")
	errCipherSuiteUnset                    = errors.New("server hello can not be created without a cipher suite")
	errCompressionMethodUnset              = errors.New("server hello can not be created without a compression method")
	errInvalidCompressionMethod            = errors.New("invalid or unknown compression method")
	errInvalidSignatureScheme              = errors.New("invalid or unknown signature scheme")
	errCertificateRequestContextTooLong    = errors.New("certificate request context must not be longer than 255 bytes")
	errInvalidCertificateRequestContext    = errors.New("unable to read certificate request context")
	errInvalidCertificateEntry             = errors.New("invalid certificate entry")
	errCertificateListTooLong              = errors.New("certificate list exceeds maximum encodable length")
	errMissingSignatureAlgorithmsExtension = errors.New("certificate request requires a signature_algorithms extension")
	errInvalidExtensionsLength             = errors.New("extensions length is out of range")
	errEmptySessionTicket                  = errors.New("session ticket must not be empty")
	errTicketNonceTooLong                  = errors.New("ticket nonce must not be longer than 255 bytes")
	errInvalidKeyUpdateRequest             = errors.New("invalid key update request value")
	errVerifyDataLengthMismatch            = errors.New("verify data length does not match the negotiated hash size")
	errNotImplemented                      = errors.New("feature has not been implemented yet")
)
