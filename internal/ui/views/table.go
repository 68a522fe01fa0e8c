package views

import (
	"github.com/charmbracelet/bubbles/table"

	"usertable/internal/domain"
)

// UserTable renders the visible users with a movable cursor
type UserTable struct {
	model     table.Model
	users     []domain.User
	showEmail bool
}

// NewUserTable creates an empty, focused table
func NewUserTable(styles *Styles, showEmail bool) *UserTable {
	t := &UserTable{showEmail: showEmail}
	t.model = table.New(
		table.WithColumns(t.columns(80)),
		table.WithFocused(true),
		table.WithHeight(10),
		table.WithStyles(styles.Table),
	)
	return t
}

// columns splits width between the fixed set of columns
func (t *UserTable) columns(width int) []table.Column {
	type col struct {
		title  string
		weight int
	}
	cols := []col{
		{"Username", 2},
		{"Name", 3},
		{"City", 2},
		{"Company", 3},
	}
	if t.showEmail {
		cols = append(cols[:2], append([]col{{"Email", 3}}, cols[2:]...)...)
	}

	total := 0
	for _, c := range cols {
		total += c.weight
	}

	// Each cell carries one column of padding on both sides
	usable := width - 2*len(cols)
	if usable < len(cols)*6 {
		usable = len(cols) * 6
	}

	out := make([]table.Column, 0, len(cols))
	for _, c := range cols {
		out = append(out, table.Column{Title: c.title, Width: usable * c.weight / total})
	}
	return out
}

func (t *UserTable) row(u domain.User) table.Row {
	if t.showEmail {
		return table.Row{u.Username, u.Name, u.Email, u.Address.City, u.Company.Name}
	}
	return table.Row{u.Username, u.Name, u.Address.City, u.Company.Name}
}

// SetUsers replaces the rows, keeping the cursor inside the new range
func (t *UserTable) SetUsers(users []domain.User) {
	t.users = users
	rows := make([]table.Row, 0, len(users))
	for _, u := range users {
		rows = append(rows, t.row(u))
	}
	t.model.SetRows(rows)

	switch {
	case len(rows) == 0:
		t.model.SetCursor(0)
	case t.model.Cursor() >= len(rows):
		t.model.SetCursor(len(rows) - 1)
	case t.model.Cursor() < 0:
		t.model.SetCursor(0)
	}
}

// SetSize fits the table into the given box
func (t *UserTable) SetSize(width, height int) {
	if height < 3 {
		height = 3
	}
	t.model.SetColumns(t.columns(width))
	t.model.SetWidth(width)
	t.model.SetHeight(height)
}

// Navigate moves the cursor in the given direction
func (t *UserTable) Navigate(direction string) {
	switch direction {
	case "up":
		t.model.MoveUp(1)
	case "down":
		t.model.MoveDown(1)
	case "pageup":
		t.model.MoveUp(t.model.Height())
	case "pagedown":
		t.model.MoveDown(t.model.Height())
	case "home":
		t.model.GotoTop()
	case "end":
		t.model.GotoBottom()
	}
}

// Cursor returns the highlighted row index
func (t *UserTable) Cursor() int {
	return t.model.Cursor()
}

// Selected returns the highlighted user
func (t *UserTable) Selected() (domain.User, bool) {
	i := t.model.Cursor()
	if i < 0 || i >= len(t.users) {
		return domain.User{}, false
	}
	return t.users[i], true
}

// View renders the table
func (t *UserTable) View() string {
	return t.model.View()
}
