package errors

const (
	// hashing err
	ErrAPIMessageTooLong = 1101
	ErrAPIDigestLength   = 1102

	// decode and encode err
	ErrAPIDecodeHexString = 1201
	ErrAPIOddHexLength    = 1202
	ErrAPIHashFromStr     = 1203

	// usage err
	ErrAPIInvalidParameter = 1301
	ErrAPIMissingArgument  = 1302
	ErrAPIOpenFile         = 1303

	// other err
	ErrAPIUnknownErr = 1401
)
