package domain

const AccountTypeExpress = "express"

// ConnectedAccount is a marketplace participant that can receive transfers.
type ConnectedAccount struct {
	ID               string
	Type             string
	Email            string
	FirstName        string
	DefaultCurrency  string
	Country          string
	Created          int64
	ChargesEnabled   bool
	PayoutsEnabled   bool
	DetailsSubmitted bool
	Deleted          bool
}

func (a ConnectedAccount) Onboarded() bool {
	return a.DetailsSubmitted && a.ChargesEnabled
}

type ConnectedAccountParams struct {
	Email           string
	FirstName       string
	DefaultCurrency string
	Country         string
	Metadata        map[string]string
}

type AccountLinkParams struct {
	AccountID  string
	RefreshURL string
	ReturnURL  string
}
