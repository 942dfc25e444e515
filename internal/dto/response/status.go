package response

// Status is a business outcome to show the user: a message key plus the
// values substituted into the localized text.
type Status struct {
	Kind   string `json:"kind"`
	Params []any  `json:"params,omitempty"`
}

func NewStatus(kind string, params ...any) *Status {
	return &Status{Kind: kind, Params: params}
}

// Notice carries an optional status and its rendered text on a page.
type Notice struct {
	Status  *Status `json:"status,omitempty"`
	Message string  `json:"message,omitempty"`
}

// Localize fills Message from Status using translate and returns it.
func (n *Notice) Localize(translate func(*Status) string) string {
	if n.Status != nil {
		n.Message = translate(n.Status)
	}
	return n.Message
}

// Localizable is implemented by every page embedding Notice.
type Localizable interface {
	Localize(translate func(*Status) string) string
}
