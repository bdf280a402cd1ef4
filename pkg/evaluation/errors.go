package evaluation

import "errors"

var (
	// ErrConfiguration: no job description or no usable oracle. Raised before any call.
	ErrConfiguration = errors.New("evaluation is not configured")
	// ErrOracleEmptyResponse: the oracle answered with no payload.
	ErrOracleEmptyResponse = errors.New("oracle returned empty response")
	// ErrOracleMalformedResponse: the payload broke the evaluation schema or banding.
	ErrOracleMalformedResponse = errors.New("oracle returned malformed evaluation")
	// ErrOracleUnavailable: the oracle call itself failed.
	ErrOracleUnavailable = errors.New("oracle unavailable")
)
