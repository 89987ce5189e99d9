package models

// DemoData is the hardcoded dashboard preview payload
type DemoData struct {
	Name            string   `json:"name"`
	ReferralCode    string   `json:"referralCode"`
	DonationsRaised int      `json:"donationsRaised"`
	Rewards         []string `json:"rewards"`
}

// NewDemoData returns a fresh copy of the demo payload
func NewDemoData() DemoData {
	return DemoData{
		Name:            "John Doe",
		ReferralCode:    "johndoe2025",
		DonationsRaised: 1250,
		Rewards:         []string{"Bronze Badge", "Silver Badge", "Gold Badge", "Platinum Badge"},
	}
}
