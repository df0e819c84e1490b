package domain

// TransportFailureStatus marks an outcome where no HTTP exchange completed.
const TransportFailureStatus = -1

// TransportFailureReason is the reason recorded with TransportFailureStatus.
const TransportFailureReason = "Unexpected Error"

// DeliveryOutcome is the result of one webhook attempt.
type DeliveryOutcome struct {
	Status   int    `json:"wh_status"`
	Success  bool   `json:"wh_success"`
	Reason   string `json:"wh_message"`
	Response string `json:"wh_response"`
}

// TransportFailure builds the outcome recorded when the request never got a response.
func TransportFailure(err error) DeliveryOutcome {
	return DeliveryOutcome{
		Status:   TransportFailureStatus,
		Success:  false,
		Reason:   TransportFailureReason,
		Response: err.Error(),
	}
}

// Fields returns the extra keys the outcome is merged under.
func (o DeliveryOutcome) Fields() map[string]any {
	return map[string]any{
		ExtraWebhookStatus:   o.Status,
		ExtraWebhookSuccess:  o.Success,
		ExtraWebhookMessage:  o.Reason,
		ExtraWebhookResponse: o.Response,
	}
}
