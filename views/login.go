package views

import (
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Login renders the credential entry page. errMsg is shown as an inline
// notice after a failed attempt.
func Login(theme, errMsg string) Node {
	return Page("Sign in", theme, nil,
		Div(
			Class("login-wrap glass-card"),
			H1(Text("Welcome back")),
			P(Text("Sign in to view the community fund dashboard.")),
			notice("error", errMsg),
			Form(
				Method("post"),
				Action("/login"),
				Class("form-grid"),
				Label(For("username"), Text("Username")),
				Input(ID("username"), Name("username"), Placeholder("Username"), Required()),
				Label(For("password"), Text("Password")),
				Input(ID("password"), Name("password"), Type("password"), Placeholder("Password"), Required()),
				Button(Type("submit"), Class("btn btn-primary"), Text("Sign In")),
			),
		),
	)
}
