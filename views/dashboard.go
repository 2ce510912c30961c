package views

import (
	"fmt"
	"strconv"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"community-fund/models"
)

// DashboardData is everything the dashboard page needs: ledger and goal
// snapshots plus the ephemeral UI state carried in the request (search
// query, notices).
type DashboardData struct {
	Session      models.Session
	Balance      float64
	Goal         float64
	Progress     float64
	Transactions []models.Transaction
	Members      []models.Member
	Query        string
	Error        string
	Flash        string
}

// Dashboard renders the gated fund overview: stats cards and the
// transaction history table.
func Dashboard(theme string, data DashboardData) Node {
	sess := data.Session
	welcome := "You can view the latest fund information and transaction history."
	if sess.Role == models.RoleMahaMantri {
		welcome = "You have complete access to manage the community fund."
	}
	return Page("Dashboard", theme, &sess,
		Div(
			Class("container"),
			H1(Text("Welcome, "+sess.Name)),
			P(Class("stat-label"), Text(welcome)),
			notice("error", data.Error),
			notice("success", data.Flash),
			Div(
				Class("stats-grid"),
				balanceCard(data),
				goalCard(data),
				progressCard(data),
			),
			historyCard(data),
		),
	)
}

func balanceCard(data DashboardData) Node {
	var status Node
	if data.Balance >= data.Goal {
		status = Span(Class("stat-ok"), Text("Goal achieved"))
	} else {
		status = Span(Class("stat-warn"), Text(rupees(data.Goal-data.Balance)+" more to reach goal"))
	}
	return Div(
		Class("glass-card"),
		H3(Text("Total Balance")),
		P(Class("stat-label"), Text("Current community fund")),
		Div(Class("stat-value"), Text(rupees(data.Balance))),
		status,
	)
}

func goalCard(data DashboardData) Node {
	card := []Node{
		H3(Text("Monthly Goal")),
	}
	if data.Session.Role == models.RoleMahaMantri {
		card = append(card,
			Div(Class("stat-value"), Text(rupees(data.Goal))),
			Details(
				Class("panel"),
				Summary(Text("Edit Goal")),
				Form(
					Method("post"),
					Action("/dashboard/goal"),
					Class("form-grid"),
					Label(For("goal"), Text("Target amount")),
					Input(ID("goal"), Name("goal"), Type("number"), Min("1"), Step("any"),
						Value(strconv.FormatFloat(data.Goal, 'f', -1, 64)), Required()),
					Button(Type("submit"), Class("btn btn-primary"), Text("Save")),
				),
			),
		)
	} else {
		card = append(card,
			P(Class("stat-label"), Text("Target collection amount")),
			Div(Class("stat-value"), Text(rupees(data.Goal))),
		)
	}
	return Div(Class("glass-card"), Group(card))
}

func progressCard(data DashboardData) Node {
	pct := data.Progress
	return Div(
		Class("glass-card"),
		H3(Text("Progress")),
		P(Class("stat-label"), Text("Current funding status")),
		Div(
			Class("progress-track"),
			Div(Class("progress-fill"), Style(fmt.Sprintf("width: %.0f%%", pct))),
		),
		Div(
			Class("stat-label"),
			Text(fmt.Sprintf("%.0f%% of goal — %s / %s", pct, rupees(data.Balance), rupees(data.Goal))),
		),
	)
}

func historyCard(data DashboardData) Node {
	return Div(
		Class("glass-card"),
		Div(
			Class("history-head"),
			Div(
				H3(Text("Transaction History")),
				P(Class("stat-label"), Text("Recent fund contributions")),
			),
			Div(
				Form(
					Method("get"),
					Action("/dashboard"),
					Class("search-form inline-form"),
					Input(Name("q"), Placeholder("Search transactions..."), Value(data.Query)),
				),
			),
			Div(
				Class("export-links"),
				A(Href("/dashboard/export?format=pdf"), Text("Export PDF")),
				A(Href("/dashboard/export?format=xlsx"), Text("Export XLSX")),
			),
		),
		If(data.Session.Role == models.RoleMahaMantri, addTransactionPanel(data.Members)),
		Table(
			Class("tx-table"),
			THead(
				Tr(
					Th(Text("Date")),
					Th(Text("Member")),
					Th(Text("Role")),
					Th(Class("amount"), Text("Amount")),
				),
			),
			TBody(transactionRows(data.Transactions)),
		),
	)
}

func transactionRows(txs []models.Transaction) Node {
	if len(txs) == 0 {
		return Tr(Td(Attr("colspan", "4"), Class("empty"), Text("No transactions found.")))
	}
	return Map(txs, func(tx models.Transaction) Node {
		return Tr(
			Td(Text(tx.Date)),
			Td(Strong(Text(tx.MemberName))),
			Td(Text(string(tx.Role))),
			Td(Class("amount"), Text(rupees(tx.Amount))),
		)
	})
}

func addTransactionPanel(members []models.Member) Node {
	return Details(
		Class("panel"),
		Summary(Text("Add Transaction")),
		Form(
			Method("post"),
			Action("/dashboard/transactions"),
			Class("form-grid"),
			Label(For("member"), Text("Member")),
			Select(
				ID("member"),
				Name("member"),
				Required(),
				Option(Value(""), Text("Select member")),
				Map(members, func(m models.Member) Node {
					return Option(Value(m.ID), Text(m.Name+" ("+string(m.Role)+")"))
				}),
			),
			Label(For("amount"), Text("Amount (₹)")),
			Input(ID("amount"), Name("amount"), Type("number"), Min("1"), Step("any"),
				Placeholder("Enter amount"), Required()),
			Button(Type("submit"), Class("btn btn-primary"), Text("Add Transaction")),
		),
	)
}
