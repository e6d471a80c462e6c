package domain

// Customer is the Telegram user talking to the bot.
type Customer struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
}

// Contact is what the customer leaves when booking a plot.
type Contact struct {
	UserID int64
	Name   string
	Phone  string
	Email  string
}

// NewContact builds the contact sent with a booking request. Telegram does not
// expose the e-mail, so a username-based placeholder is used.
func NewContact(c Customer, phone string) Contact {
	email := "not_provided@telegram"
	if c.Username != "" {
		email = c.Username + "@telegram"
	}
	return Contact{
		UserID: c.ID,
		Name:   c.FirstName,
		Phone:  phone,
		Email:  email,
	}
}
