package dashboard

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// RewardIcons are assigned to unlocked rewards by position
var RewardIcons = []string{"medal", "trophy", "star", "crown", "gem", "award"}

// LockedRewards always follow the unlocked ones
var LockedRewards = []string{"Diamond Badge", "Master Badge", "Legend Badge"}

const lockedIcon = "lock"

var usd = message.NewPrinter(language.AmericanEnglish)

// RewardCard is one tile of the rewards grid
type RewardCard struct {
	Name   string
	Icon   string
	Locked bool
}

// DashboardView is the rendered participant
type DashboardView struct {
	Name         string
	ReferralCode string
	Donations    string
	Rewards      []RewardCard
}

// View is a snapshot of everything the page shows
type View struct {
	Section       Section
	ActiveTab     string
	ActiveControl string
	Login         LoginForm
	Signup        SignupForm
	Message       *Message
	Dashboard     *DashboardView
}

// Render snapshots the current page state
func (c *Controller) Render() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := View{
		Section:       c.section,
		ActiveTab:     c.activeTab,
		ActiveControl: c.activeControl,
		Login:         c.login,
		Signup:        c.signup,
	}
	if c.message != nil {
		msg := *c.message
		v.Message = &msg
	}
	if c.section == SectionDashboard && c.user != nil {
		d := RenderDashboard(c.user)
		v.Dashboard = &d
	}
	return v
}

// RenderDashboard fills the dashboard slots for p
func RenderDashboard(p *Participant) DashboardView {
	cards := make([]RewardCard, 0, len(p.Rewards)+len(LockedRewards))
	for i, reward := range p.Rewards {
		cards = append(cards, RewardCard{Name: reward, Icon: RewardIcons[i%len(RewardIcons)]})
	}
	for _, reward := range LockedRewards {
		cards = append(cards, RewardCard{Name: reward, Icon: lockedIcon, Locked: true})
	}

	return DashboardView{
		Name:         p.Name,
		ReferralCode: p.ReferralCode,
		Donations:    FormatCurrency(p.DonationsRaised),
		Rewards:      cards,
	}
}

// FormatCurrency formats whole dollars as US currency, e.g. $1,250
func FormatCurrency(amount int) string {
	if amount < 0 {
		return "-" + usd.Sprintf("$%d", -amount)
	}
	return usd.Sprintf("$%d", amount)
}

// String renders the view as terminal text
func (v View) String() string {
	var b strings.Builder

	if v.Message != nil {
		fmt.Fprintf(&b, "[%s] %s\n\n", v.Message.Kind, v.Message.Text)
	}

	if v.Dashboard == nil {
		fmt.Fprintf(&b, "Not signed in (%s tab)\n", v.ActiveTab)
		return b.String()
	}

	d := v.Dashboard
	fmt.Fprintf(&b, "Welcome, %s\n", d.Name)
	fmt.Fprintf(&b, "Referral code:    %s\n", d.ReferralCode)
	fmt.Fprintf(&b, "Donations raised: %s\n", d.Donations)
	b.WriteString("Rewards:\n")
	for _, card := range d.Rewards {
		status := "unlocked"
		if card.Locked {
			status = "locked"
		}
		fmt.Fprintf(&b, "  %-7s %-16s %s\n", card.Icon, card.Name, status)
	}
	return b.String()
}
