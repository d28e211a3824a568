package htmlscan

// componentVocabulary is the fixed set of UI-component nouns a page heading
// must exactly match (after normalization) to count as a component. Keyed by
// normalized form; the value is the display name. Anything outside this list
// is assumed to be an ordinary page heading.
var componentVocabulary = map[string]string{
	"accordion":    "Accordion",
	"alert":        "Alert",
	"alertdialog":  "Alert Dialog",
	"autocomplete": "Autocomplete",
	"avatar":       "Avatar",
	"badge":        "Badge",
	"banner":       "Banner",
	"breadcrumb":   "Breadcrumb",
	"breadcrumbs":  "Breadcrumbs",
	"button":       "Button",
	"buttongroup":  "Button Group",
	"calendar":     "Calendar",
	"card":         "Card",
	"carousel":     "Carousel",
	"checkbox":     "Checkbox",
	"chip":         "Chip",
	"collapse":     "Collapse",
	"combobox":     "Combobox",
	"datepicker":   "Date Picker",
	"dialog":       "Dialog",
	"divider":      "Divider",
	"drawer":       "Drawer",
	"dropdown":     "Dropdown",
	"dropdownmenu": "Dropdown Menu",
	"fileupload":   "File Upload",
	"form":         "Form",
	"icon":         "Icon",
	"input":        "Input",
	"label":        "Label",
	"list":         "List",
	"menu":         "Menu",
	"modal":        "Modal",
	"navbar":       "Navbar",
	"navigation":   "Navigation",
	"notification": "Notification",
	"pagination":   "Pagination",
	"popover":      "Popover",
	"progress":     "Progress",
	"progressbar":  "Progress Bar",
	"radio":        "Radio",
	"radiogroup":   "Radio Group",
	"rating":       "Rating",
	"select":       "Select",
	"sidebar":      "Sidebar",
	"skeleton":     "Skeleton",
	"slider":       "Slider",
	"snackbar":     "Snackbar",
	"spinner":      "Spinner",
	"stepper":      "Stepper",
	"switch":       "Switch",
	"table":        "Table",
	"tabs":         "Tabs",
	"tag":          "Tag",
	"textarea":     "Textarea",
	"timeline":     "Timeline",
	"toast":        "Toast",
	"toggle":       "Toggle",
	"toolbar":      "Toolbar",
	"tooltip":      "Tooltip",
	"tree":         "Tree",
	"typography":   "Typography",
}
