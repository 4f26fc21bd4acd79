package resource

import (
	"github.com/gravitrone/resale-admin/cli/internal/api"
	"github.com/gravitrone/resale-admin/cli/internal/listview"
	"github.com/gravitrone/resale-admin/cli/internal/stats"
)

// Users lists accounts. The role filter is applied by the backend.
func Users(client *api.Client) Definition[api.User] {
	return Definition[api.User]{
		Key:   "users",
		Title: "Users",
		Noun:  "users",
		List: listview.Config[api.User]{
			Fields: map[string]listview.Accessor[api.User]{
				"name":   func(u api.User) string { return u.Name },
				"email":  func(u api.User) string { return u.Email },
				"phone":  func(u api.User) string { return u.Phone },
				"role":   func(u api.User) string { return u.Role },
				"active": func(u api.User) string { return yesNo(u.IsActive) },
			},
			Searchable: []string{"name", "email", "phone"},
			Filters:    []string{"role", "active"},
			Remote:     []string{"role"},
			Choices: map[string][]string{
				"role":   api.UserRoles,
				"active": statusChoices,
			},
		},
		Source: FromAPI(client.ListUsers),
		Columns: []Column{
			{Header: "Name", Width: 20},
			{Header: "Email", Width: 26},
			{Header: "Phone", Width: 15},
			{Header: "Role", Width: 9},
			{Header: "Active", Width: 8},
			{Header: "Joined", Width: 10},
		},
		Row: func(u api.User) []string {
			return []string{
				listview.Text(u.Name),
				listview.Text(u.Email),
				listview.Text(u.Phone),
				listview.Text(u.Role),
				yesNo(u.IsActive),
				Date(u.CreatedAt),
			}
		},
		ID:    func(u api.User) string { return u.ID },
		Label: func(u api.User) string { return listview.Or(u.Name, listview.Or(u.Email, u.ID)) },
		Detail: func(u api.User) []Field {
			return []Field{
				{"Name", listview.Text(u.Name)},
				{"Email", listview.Text(u.Email)},
				{"Phone", listview.Text(u.Phone)},
				{"Role", listview.Text(u.Role)},
				{"Active", yesNo(u.IsActive)},
				{"Joined", Date(u.CreatedAt)},
			}
		},
		Summary: UserSummary,
		Add:     creator(client.CreateUser),
		Edit:    updater(client.UpdateUser),
		Remove:  deleter(client, api.PathUsers),
	}
}

// UserSummary rolls up accounts, preferring the backend counters.
func UserSummary(users []api.User, server stats.Summary) []Field {
	total := server.Resolve("total", func() float64 { return float64(len(users)) })
	active := server.Resolve("active", func() float64 {
		return float64(stats.CountWhere(users, func(u api.User) bool { return u.IsActive }))
	})
	return []Field{
		{"Users", Count(total)},
		{"Active", Count(active)},
		{"Active rate", Percent(stats.Ratio(int(active), int(total)))},
	}
}
