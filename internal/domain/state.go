package domain

// DefaultState is preselected by the add form.
const DefaultState = "California"

// States is the fixed set of region names a record may carry.
var States = []string{
	"Alabama", "Alaska", "Arizona", "Arkansas", "California", "Colorado", "Connecticut", "Delaware",
	"Florida", "Georgia", "Hawaii", "Idaho", "Illinois", "Indiana", "Iowa", "Kansas", "Kentucky",
	"Louisiana", "Maine", "Maryland", "Massachusetts", "Michigan", "Minnesota", "Mississippi",
	"Missouri", "Montana", "Nebraska", "Nevada", "New Hampshire", "New Jersey", "New Mexico",
	"New York", "North Carolina", "North Dakota", "Ohio", "Oklahoma", "Oregon", "Pennsylvania",
	"Rhode Island", "South Carolina", "South Dakota", "Tennessee", "Texas", "Utah", "Vermont",
	"Virginia", "Washington", "West Virginia", "Wisconsin", "Wyoming",
}

var stateSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(States))
	for _, s := range States {
		set[s] = struct{}{}
	}
	return set
}()

// IsKnownState reports whether name is in States.
func IsKnownState(name string) bool {
	_, ok := stateSet[name]
	return ok
}
