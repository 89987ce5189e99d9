package dashboard

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ArowuTest/intern-dashboard/internal/models"
	"github.com/ArowuTest/intern-dashboard/pkg/internapi"
	"github.com/sirupsen/logrus"
)

// User-facing messages
const (
	MsgFillAllFields      = "Please fill in all fields."
	MsgLoginSuccess       = "Login successful!"
	MsgInvalidCredentials = "Invalid credentials. Please try again."
	MsgLoginFailed        = "Login failed. Please try again."
	MsgSignupSuccess      = "Account created successfully! Please login."
	MsgSignupFailed       = "Signup failed. Please try again."
	MsgDemoLoaded         = "Demo data loaded successfully!"
	MsgDemoFailed         = "Failed to load demo data. Please try again."
	MsgLoggedOut          = "Logged out successfully!"
)

// DefaultMessageTTL is how long a banner stays visible
const DefaultMessageTTL = 5 * time.Second

var (
	// ErrMissingFields is returned when a login form is incomplete
	ErrMissingFields = errors.New("missing login fields")
	// ErrInvalidCredentials is returned when no record matches the login
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Section is the visible part of the page
type Section string

const (
	SectionAuth      Section = "auth"
	SectionDashboard Section = "dashboard"
)

// Tabs of the auth section
const (
	TabLogin  = "login"
	TabSignup = "signup"
)

// MessageKind styles a banner
type MessageKind string

const (
	MessageSuccess MessageKind = "success"
	MessageError   MessageKind = "error"
)

// Message is a transient banner attached to a section
type Message struct {
	Text    string
	Kind    MessageKind
	Section Section
}

// LoginForm holds the login inputs
type LoginForm struct {
	Email    string
	Password string
}

// SignupForm holds the signup inputs
type SignupForm struct {
	Name         string
	Email        string
	Password     string
	ReferralCode string
}

// API is the subset of the intern API the controller calls
type API interface {
	ListInterns(ctx context.Context) ([]*models.Intern, error)
	CreateIntern(ctx context.Context, req *models.CreateInternRequest) (*models.CreateInternResponse, error)
	DemoData(ctx context.Context) (*models.DemoData, error)
}

// Option configures a Controller
type Option func(*Controller)

// WithCredentialChecker replaces the PlaintextChecker
func WithCredentialChecker(checker CredentialChecker) Option {
	return func(c *Controller) { c.checker = checker }
}

// WithMessageTTL changes how long banners stay visible
func WithMessageTTL(ttl time.Duration) Option {
	return func(c *Controller) { c.messageTTL = ttl }
}

// WithLogger sets the logger used for persistence failures
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Controller) { c.log = log }
}

// Controller owns the client page state. The current participant is only
// ever changed through setUser, which also writes the session store.
type Controller struct {
	api        API
	store      SessionStore
	checker    CredentialChecker
	messageTTL time.Duration
	log        logrus.FieldLogger

	mu            sync.Mutex
	user          *Participant
	section       Section
	activeTab     string
	activeControl string
	login         LoginForm
	signup        SignupForm
	message       *Message
	messageTimer  *time.Timer
	messageSeq    int
}

// NewController creates a controller showing the login tab
func NewController(api API, store SessionStore, opts ...Option) *Controller {
	c := &Controller{
		api:           api,
		store:         store,
		checker:       PlaintextChecker{},
		messageTTL:    DefaultMessageTTL,
		log:           logrus.StandardLogger(),
		section:       SectionAuth,
		activeTab:     TabLogin,
		activeControl: tabControl(TabLogin),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start hydrates the session from the store and shows the dashboard when
// a participant was persisted.
func (c *Controller) Start() error {
	p, err := c.store.Load()
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.user = p
	if p != nil {
		c.section = SectionDashboard
	}
	return nil
}

// User returns a copy of the current participant, or nil
func (c *Controller) User() *Participant {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.user == nil {
		return nil
	}
	p := *c.user
	return &p
}

// Login matches email against the first listed record with that exact
// email and checks the password through the CredentialChecker.
func (c *Controller) Login(ctx context.Context, email, password string) error {
	c.mu.Lock()
	c.login = LoginForm{Email: email, Password: password}
	c.mu.Unlock()

	if email == "" || password == "" {
		c.ShowMessage(MsgFillAllFields, MessageError)
		return ErrMissingFields
	}

	interns, err := c.api.ListInterns(ctx)
	if err != nil {
		c.ShowMessage(MsgLoginFailed, MessageError)
		return err
	}

	var match *models.Intern
	for _, intern := range interns {
		if intern.Email == email {
			match = intern
			break
		}
	}
	if match == nil || !c.checker.Check(match, password) {
		c.ShowMessage(MsgInvalidCredentials, MessageError)
		return ErrInvalidCredentials
	}

	c.mu.Lock()
	c.setUser(participantFromIntern(match))
	c.section = SectionDashboard
	c.mu.Unlock()

	c.ShowMessage(MsgLoginSuccess, MessageSuccess)
	return nil
}

// Signup posts the form. On success the form is reset and the login tab
// is shown; on failure the server message is surfaced when there is one.
func (c *Controller) Signup(ctx context.Context, form SignupForm) error {
	c.mu.Lock()
	c.signup = form
	c.mu.Unlock()

	_, err := c.api.CreateIntern(ctx, &models.CreateInternRequest{
		Name:         form.Name,
		Email:        form.Email,
		Password:     form.Password,
		ReferralCode: form.ReferralCode,
	})
	if err != nil {
		msg := MsgSignupFailed
		var apiErr *internapi.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			msg = apiErr.Message
		}
		c.ShowMessage(msg, MessageError)
		return err
	}

	c.mu.Lock()
	c.signup = SignupForm{}
	c.mu.Unlock()

	c.ShowMessage(MsgSignupSuccess, MessageSuccess)
	c.ShowTab(TabLogin, "")
	return nil
}

// LoadDemoData signs in as the demo participant without credentials
func (c *Controller) LoadDemoData(ctx context.Context) error {
	demo, err := c.api.DemoData(ctx)
	if err != nil {
		c.ShowMessage(MsgDemoFailed, MessageError)
		return err
	}

	c.mu.Lock()
	c.setUser(participantFromDemo(demo))
	c.section = SectionDashboard
	c.mu.Unlock()

	c.ShowMessage(MsgDemoLoaded, MessageSuccess)
	return nil
}

// ShowDashboard switches to the dashboard section
func (c *Controller) ShowDashboard() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.section = SectionDashboard
}

// Logout clears the participant and both forms and returns to login
func (c *Controller) Logout() {
	c.mu.Lock()
	c.setUser(nil)
	c.login = LoginForm{}
	c.signup = SignupForm{}
	c.section = SectionAuth
	c.mu.Unlock()

	c.ShowTab(TabLogin, "")
	c.ShowMessage(MsgLoggedOut, MessageSuccess)
}

// ShowTab activates tab. control names the control that triggered the
// switch; empty means the tab's own button.
func (c *Controller) ShowTab(tab, control string) {
	if control == "" {
		control = tabControl(tab)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.activeTab = tab
	c.activeControl = control
}

// ShowMessage replaces any banner with text on the visible section and
// dismisses it after the message TTL.
func (c *Controller) ShowMessage(text string, kind MessageKind) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.messageTimer != nil {
		c.messageTimer.Stop()
	}
	c.messageSeq++
	seq := c.messageSeq
	c.message = &Message{Text: text, Kind: kind, Section: c.section}
	c.messageTimer = time.AfterFunc(c.messageTTL, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.messageSeq == seq {
			c.message = nil
			c.messageTimer = nil
		}
	})
}

// setUser is the single mutation point of the current participant.
// Callers hold c.mu.
func (c *Controller) setUser(p *Participant) {
	c.user = p

	var err error
	if p != nil {
		err = c.store.Save(p)
	} else {
		err = c.store.Clear()
	}
	if err != nil {
		c.log.WithError(err).Warn("Failed to persist session")
	}
}

func tabControl(tab string) string {
	return tab + "-tab"
}
