package openai

import "errors"

// ErrEmptyResponse indicates the model returned no choices for a request.
var ErrEmptyResponse = errors.New("model returned no choices")
