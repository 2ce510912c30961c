package views

import (
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"community-fund/models"
)

// revealScript animates the community section the first time it scrolls
// into view. Once triggered the observer detaches, so it never replays.
const revealScript = `(function(){
  var targets=document.querySelectorAll('.reveal');
  if(!('IntersectionObserver' in window)){
    targets.forEach(function(t){ t.classList.add('is-visible'); });
    return;
  }
  var observer=new IntersectionObserver(function(entries){
    entries.forEach(function(entry){
      if(entry.isIntersecting){
        entry.target.classList.add('is-visible');
        observer.unobserve(entry.target);
      }
    });
  },{threshold:0.1});
  targets.forEach(function(t){ observer.observe(t); });
})();`

// Landing renders the public home page: hero with a session-aware call to
// action, the community roster and the quote section.
func Landing(theme string, sess *models.Session, members []models.Member) Node {
	return Page("Home", theme, sess,
		Div(
			Class("container"),
			Section(
				Class("hero"),
				H1(Text("Maha-Mantri Fund Community")),
				P(Text("Together we rise. A visionary collective pooling resources to create extraordinary possibilities for our community.")),
				heroAction(sess),
			),
			Section(
				ID("community"),
				Class("reveal"),
				Div(
					Class("section-title"),
					H2(Text("Our Community")),
					P(Text("Meet the visionaries behind the community. Each member brings unique strengths to our collective mission.")),
				),
				Div(
					Class("member-grid"),
					Map(members, memberCard),
				),
			),
			BlockQuote(
				Class("glass-card quote"),
				P(Text("\"Unity is strength. When there is teamwork and collaboration, wonderful things can be achieved.\"")),
				Footer(Text("— Community Philosophy")),
			),
		),
		Script(Raw(revealScript)),
	)
}

func heroAction(sess *models.Session) Node {
	if sess != nil {
		return A(Href("/dashboard"), Class("btn btn-primary"), Text("Go to Dashboard"))
	}
	return A(Href("/login"), Class("btn btn-primary"), Text("Login to Access"))
}

func memberCard(m models.Member) Node {
	return Div(
		Class("glass-card member-card"),
		Span(Class("badge"), Text(string(m.Role))),
		Div(Class("avatar"), Text(initials(m.Name))),
		H3(Text(m.Name)),
		P(Text(m.Description)),
	)
}
