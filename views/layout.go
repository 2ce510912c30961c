package views

import (
	"strconv"
	"strings"
	"time"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"community-fund/models"
)

// Page wraps body content in the shared shell: navbar, footer, stylesheet
// and theme attribute. The theme string is the persisted display
// preference, "light" or "dark".
func Page(title, theme string, sess *models.Session, body ...Node) Node {
	return HTML(
		Lang("en"),
		Attr("data-theme", theme),
		Head(
			Meta(Charset("utf-8")),
			Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
			TitleEl(Text(title+" | Maha-Mantri Community Fund")),
			Link(Rel("icon"), Href("data:,")),
			Link(Rel("preconnect"), Href("https://fonts.googleapis.com")),
			Link(Rel("preconnect"), Href("https://fonts.gstatic.com"), Attr("crossorigin", "")),
			Link(Rel("stylesheet"), Href("https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700&display=swap")),
			StyleEl(Raw(appCSS)),
		),
		Body(
			navbar(sess, theme),
			Main(Class("page-main"), Group(body)),
			footer(),
		),
	)
}

func navbar(sess *models.Session, theme string) Node {
	themeLabel := "Dark"
	if theme == "dark" {
		themeLabel = "Light"
	}
	return Header(
		Class("navbar"),
		Div(
			Class("container navbar-inner"),
			A(Href("/"), Class("brand"), Text("Maha-Mantri")),
			Nav(
				Class("nav-links"),
				A(Href("/"), Text("Home")),
				If(sess != nil, A(Href("/dashboard"), Text("Dashboard"))),
				Form(
					Method("post"),
					Action("/theme"),
					Class("inline-form"),
					Button(Type("submit"), Class("btn btn-ghost"), Text(themeLabel)),
				),
				sessionAction(sess),
			),
		),
	)
}

func sessionAction(sess *models.Session) Node {
	if sess == nil {
		return A(Href("/login"), Class("btn btn-outline"), Text("Login"))
	}
	return Form(
		Method("post"),
		Action("/logout"),
		Class("inline-form"),
		Button(Type("submit"), Class("btn btn-outline"), Text("Logout")),
	)
}

func footer() Node {
	year := strconv.Itoa(time.Now().Year())
	return Footer(
		Class("site-footer"),
		Div(
			Class("container footer-grid"),
			Div(
				Class("footer-about"),
				H3(Text("Maha-Mantri Community")),
				P(Text("A visionary collective united by purpose. We stand together, pooling our resources to build something greater than ourselves.")),
			),
			Div(
				H4(Text("Quick Links")),
				Ul(
					Li(A(Href("/"), Text("Home"))),
					Li(A(Href("/login"), Text("Login"))),
					Li(A(Href("/#community"), Text("Our Community"))),
				),
			),
			Div(
				H4(Text("Our Values")),
				Ul(
					Li(Text("Commitment to Excellence")),
					Li(Text("Integrity in Action")),
					Li(Text("Community First")),
					Li(Text("Progressive Thinking")),
					Li(Text("Collective Success")),
				),
			),
		),
		Div(
			Class("container footer-bottom"),
			P(Text("© "+year+" Maha-Mantri Community. All rights reserved.")),
		),
	)
}

// notice renders a dismissible inline message; kind is "error" or "success".
func notice(kind, msg string) Node {
	if msg == "" {
		return nil
	}
	return Div(
		Class("notice notice-"+kind),
		Span(Text(msg)),
		A(Href("?"), Class("notice-dismiss"), Text("Dismiss")),
	)
}

// initials derives the avatar fallback from a display name, e.g.
// "Parth Kacha" -> "PK".
func initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		b.WriteString(strings.ToUpper(part[:1]))
	}
	return b.String()
}

func rupees(v float64) string {
	return "₹" + strconv.FormatFloat(v, 'f', -1, 64)
}
