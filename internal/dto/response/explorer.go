package response

import "room-booking/pkg/database"

type TableResult struct {
	Name    string         `json:"name"`
	Columns []string       `json:"columns"`
	Rows    []database.Row `json:"rows"`
}

type ExplorerPage struct {
	Notice
	AllTables      []string      `json:"all_tables"`
	SelectedTables []string      `json:"selected_tables"`
	Rejected       []string      `json:"rejected,omitempty"`
	Limit          int           `json:"limit"`
	Results        []TableResult `json:"results"`
}

// IsSelected lets templates pre-check the table checkboxes.
func (p *ExplorerPage) IsSelected(table string) bool {
	for _, t := range p.SelectedTables {
		if t == table {
			return true
		}
	}
	return false
}
