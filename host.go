package authlete

// EvaluationHost is the base URL of the Authlete Web APIs for evaluation.
const EvaluationHost = "https://evaluation-dot-authlete.appspot.com"
