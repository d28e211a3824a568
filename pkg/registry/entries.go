package registry

import (
	"slices"

	"github.com/hellenic-development/design-resolver/pkg/catalog"
)

// group expands a category and a list of component names into catalog records.
// IDs are left empty here; materialize assigns them per resolution.
func group(category string, names ...string) []catalog.Component {
	components := make([]catalog.Component, len(names))
	for i, name := range names {
		components[i] = catalog.Component{Name: name, Category: category}
	}
	return components
}

// curated is the built-in table of well-known design systems, matched in
// order. Patterns are lowercase substrings tested against the case-folded
// input, most specific entry first.
var curated = []Entry{
	{
		Patterns:    []string{"ui.shadcn.com", "shadcn"},
		Name:        "shadcn/ui",
		Description: "Accessible React components built on Radix primitives and Tailwind CSS",
		Source:      catalog.SourceCurated,
		SourceURL:   "https://ui.shadcn.com",
		Components: slices.Concat(
			group("Forms", "Button", "Checkbox", "Combobox", "Form", "Input", "Label", "Radio Group", "Select", "Slider", "Switch", "Textarea"),
			group("Overlay", "Alert Dialog", "Dialog", "Drawer", "Dropdown Menu", "Hover Card", "Popover", "Sheet", "Tooltip"),
			group("Display", "Accordion", "Alert", "Avatar", "Badge", "Card", "Carousel", "Skeleton", "Table"),
			group("Navigation", "Breadcrumb", "Command", "Menubar", "Navigation Menu", "Pagination", "Tabs"),
			group("Feedback", "Progress", "Sonner", "Toast"),
		),
	},
	{
		Patterns:    []string{"mui.com", "material-ui", "material ui"},
		Name:        "Material UI",
		Description: "React components implementing Google's Material Design",
		Source:      catalog.SourceCurated,
		SourceURL:   "https://mui.com",
		Components: slices.Concat(
			group("Inputs", "Autocomplete", "Button", "Button Group", "Checkbox", "Floating Action Button", "Radio Group", "Rating", "Select", "Slider", "Switch", "Text Field", "Toggle Button"),
			group("Data Display", "Avatar", "Badge", "Chip", "Divider", "Icon", "List", "Table", "Tooltip", "Typography"),
			group("Feedback", "Alert", "Backdrop", "Dialog", "Progress", "Skeleton", "Snackbar"),
			group("Surfaces", "Accordion", "App Bar", "Card", "Paper"),
			group("Navigation", "Bottom Navigation", "Breadcrumbs", "Drawer", "Menu", "Pagination", "Speed Dial", "Stepper", "Tabs"),
		),
	},
	{
		Patterns:    []string{"ant.design", "antd"},
		Name:        "Ant Design",
		Description: "Enterprise-grade React UI design language",
		Source:      catalog.SourceCurated,
		SourceURL:   "https://ant.design",
		Components: slices.Concat(
			group("General", "Button", "Icon", "Typography"),
			group("Data Entry", "Cascader", "Checkbox", "Date Picker", "Form", "Input", "Input Number", "Mentions", "Radio", "Rate", "Select", "Slider", "Switch", "Time Picker", "Transfer", "Upload"),
			group("Data Display", "Avatar", "Badge", "Calendar", "Card", "Carousel", "Collapse", "Descriptions", "Empty", "Image", "List", "Popover", "Statistic", "Table", "Tag", "Timeline", "Tooltip", "Tree"),
			group("Feedback", "Alert", "Drawer", "Message", "Modal", "Notification", "Popconfirm", "Progress", "Result", "Skeleton", "Spin"),
			group("Navigation", "Anchor", "Breadcrumb", "Dropdown", "Menu", "Pagination", "Steps", "Tabs"),
		),
	},
	{
		Patterns:    []string{"chakra-ui.com", "chakra"},
		Name:        "Chakra UI",
		Description: "Simple, modular and accessible component library for React",
		Source:      catalog.SourceCurated,
		SourceURL:   "https://chakra-ui.com",
		Components: slices.Concat(
			group("Forms", "Button", "Checkbox", "Editable", "Input", "Number Input", "Pin Input", "Radio", "Select", "Slider", "Switch", "Textarea"),
			group("Data Display", "Badge", "Card", "Code", "Divider", "Kbd", "List", "Stat", "Table", "Tag"),
			group("Feedback", "Alert", "Circular Progress", "Progress", "Skeleton", "Spinner", "Toast"),
			group("Overlay", "Alert Dialog", "Drawer", "Menu", "Modal", "Popover", "Tooltip"),
			group("Navigation", "Breadcrumb", "Link", "Stepper", "Tabs"),
		),
	},
	{
		Patterns:    []string{"mantine.dev", "mantine"},
		Name:        "Mantine",
		Description: "Full-featured React components and hooks library",
		Source:      catalog.SourceCurated,
		SourceURL:   "https://mantine.dev",
		Components: slices.Concat(
			group("Inputs", "Autocomplete", "Button", "Checkbox", "Chip", "Color Picker", "File Input", "Input", "Multi Select", "Number Input", "Password Input", "Radio", "Rating", "Segmented Control", "Select", "Slider", "Switch", "Textarea"),
			group("Data Display", "Accordion", "Avatar", "Badge", "Card", "Image", "Indicator", "Spoiler", "Table", "Timeline"),
			group("Feedback", "Alert", "Loader", "Notification", "Progress", "Ring Progress", "Skeleton"),
			group("Overlays", "Drawer", "Hover Card", "Menu", "Modal", "Popover", "Tooltip"),
			group("Navigation", "Breadcrumbs", "Pagination", "Stepper", "Tabs"),
		),
	},
	{
		Patterns:    []string{"radix-ui.com", "radix"},
		Name:        "Radix UI",
		Description: "Unstyled, accessible React primitives",
		Source:      catalog.SourceCurated,
		SourceURL:   "https://www.radix-ui.com",
		Components: slices.Concat(
			group("Primitives", "Accordion", "Alert Dialog", "Aspect Ratio", "Avatar", "Checkbox", "Collapsible", "Context Menu", "Dialog", "Dropdown Menu", "Hover Card", "Menubar", "Navigation Menu", "Popover", "Progress", "Radio Group", "Scroll Area", "Select", "Separator", "Slider", "Switch", "Tabs", "Toast", "Toggle", "Toggle Group", "Toolbar", "Tooltip"),
		),
	},
	{
		Patterns:    []string{"daisyui.com", "daisyui"},
		Name:        "daisyUI",
		Description: "Semantic component classes for Tailwind CSS",
		Source:      catalog.SourceCurated,
		SourceURL:   "https://daisyui.com",
		Components: slices.Concat(
			group("Actions", "Button", "Dropdown", "Modal", "Swap"),
			group("Data Display", "Accordion", "Avatar", "Badge", "Card", "Carousel", "Chat Bubble", "Collapse", "Countdown", "Kbd", "Stat", "Table", "Timeline"),
			group("Data Input", "Checkbox", "File Input", "Radio", "Range", "Rating", "Select", "Text Input", "Textarea", "Toggle"),
			group("Navigation", "Breadcrumbs", "Link", "Menu", "Navbar", "Pagination", "Steps", "Tab"),
			group("Feedback", "Alert", "Loading", "Progress", "Skeleton", "Toast", "Tooltip"),
		),
	},
}
