package dto

// Event keys published to the mail topic.
const (
	EventConfirmEmail  = "user.confirm_email"
	EventResetPassword = "user.reset_password"
)

// PinEmailEvent is the payload for both confirmation and recovery emails;
// the Kafka message key selects the template.
type PinEmailEvent struct {
	Correo    string `json:"correo"`
	Nombre    string `json:"nombre"`
	Pin       string `json:"pin"`
	ExpiraMin int    `json:"expira_min"`
}
