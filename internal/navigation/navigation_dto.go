package navigation

type View struct {
	Dashboard     string `json:"dashboard"`
	Title         string `json:"title"`
	Cards         []Card `json:"cards"`
	ShowAdminBack bool   `json:"show_admin_back"`
	ShowLogout    bool   `json:"show_logout"`
	DisplayName   string `json:"display_name,omitempty"`
}

type DashboardSummary struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Path  string `json:"path"`
}
