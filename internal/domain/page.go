package domain

// Page identifies one of the routed content views. Pages report their own
// identifier to the shell on activation so navigation can highlight the
// matching entry; the shell never pushes a Page back into a view.
type Page string

const (
	PageHome      Page = "home"
	PageBrowse    Page = "browse"
	PageMessages  Page = "messages"
	PageRoommates Page = "roommates"
	PageLendMe    Page = "lend-me"
	PageSettings  Page = "settings"
)

func Pages() []Page {
	return []Page{PageHome, PageBrowse, PageMessages, PageRoommates, PageLendMe, PageSettings}
}

func (p Page) Valid() bool {
	switch p {
	case PageHome, PageBrowse, PageMessages, PageRoommates, PageLendMe, PageSettings:
		return true
	default:
		return false
	}
}

func (p Page) Title() string {
	switch p {
	case PageHome:
		return "Home"
	case PageBrowse:
		return "Browse"
	case PageMessages:
		return "Messages"
	case PageRoommates:
		return "Roommates"
	case PageLendMe:
		return "LendMe"
	case PageSettings:
		return "Settings"
	default:
		return string(p)
	}
}
