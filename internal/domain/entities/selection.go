package entities

// DisplaySelection is the zone the calendar is currently displayed in.
// One instance lives for the whole session.
type DisplaySelection struct {
	zone string
}

func NewDisplaySelection(zone string) *DisplaySelection {
	return &DisplaySelection{zone: zone}
}

func (s *DisplaySelection) Zone() string { return s.zone }

func (s *DisplaySelection) Set(zone string) { s.zone = zone }
