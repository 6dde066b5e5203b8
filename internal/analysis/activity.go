package analysis

// ActivityThreshold is the approximate VO2 max (ml/kg/min) an everyday
// activity requires
type ActivityThreshold struct {
	Label  string
	VO2Max float64
}

// ActivityThresholds lists reference activities from hardest to easiest
var ActivityThresholds = []ActivityThreshold{
	{"Run 10 MPH on Flat Ground", 60},
	{"Jog 6 MPH Up Steep Hill", 50},
	{"Carry Heavy Object Upstairs", 45},
	{"Jog 6 MPH on Flat Ground", 40},
	{"Briskly Climb Stairs", 35},
	{"Walk 3 MPH Up Steep Hill", 30},
	{"Walk 3 MPH Up Slight Incline", 25},
	{"Walk 3 MPH on Flat Ground", 20},
	{"Walk 1 MPH on Flat Ground", 10},
	{"Resting", 3.5},
}

// ActivityExample describes the kind of effort a VO2 max level supports
type ActivityExample struct {
	Level       string
	VO2Max      float64
	Description string
}

// ActivityExamples runs from rest to elite endurance
var ActivityExamples = []ActivityExample{
	{"Resting", 3.5, "Sitting quietly"},
	{"Light activities", 10, "Slow walking"},
	{"Moderate activities", 20, "Brisk walking, carrying things up a flight of stairs"},
	{"Vigorous activities", 35, "Hiking, running"},
	{"High-intensity activities", 50, "Intense cycling, swimming"},
	{"Elite endurance athletes", 70, "Competitive marathon running, professional cycling"},
}
