package service

// Fixed replies for envelopes that carry no usable text.
const (
	ReplyNoTextContent  = "No text content found in the response."
	ReplySafetyBlocked  = "Response blocked due to safety settings."
	FunctionCallPrefix = "Received a function call: "
)
