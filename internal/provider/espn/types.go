package espn

// Raw ESPN fantasy v3 response shapes. Only the fields the normalizer reads.

type leagueResponse struct {
	Teams []teamRaw `json:"teams"`
}

type teamRaw struct {
	ID     int       `json:"id"`
	Name   string    `json:"name"`
	Record recordRaw `json:"record"`
	Roster rosterRaw `json:"roster"`
}

type recordRaw struct {
	Overall struct {
		Wins   int `json:"wins"`
		Losses int `json:"losses"`
	} `json:"overall"`
}

type rosterRaw struct {
	Entries []rosterEntryRaw `json:"entries"`
}

type rosterEntryRaw struct {
	PlayerPoolEntry playerPoolEntryRaw `json:"playerPoolEntry"`
}

type playerPoolEntryRaw struct {
	ID     int       `json:"id"`
	Player playerRaw `json:"player"`
}

type playerRaw struct {
	ID                int            `json:"id"`
	FullName          string         `json:"fullName"`
	DefaultPositionID int            `json:"defaultPositionId"`
	ProTeamID         int            `json:"proTeamId"`
	InjuryStatus      string         `json:"injuryStatus"`
	Stats             []statEntryRaw `json:"stats"`
}

// statEntryRaw is one stat line. statSourceId 0 is actual, 1 is projected;
// statSplitTypeId 0 is the full-season split. Applied values are pointers so
// "absent" and "zero" stay distinguishable.
type statEntryRaw struct {
	SeasonID        int                `json:"seasonId"`
	StatSourceID    int                `json:"statSourceId"`
	StatSplitTypeID int                `json:"statSplitTypeId"`
	Stats           map[string]float64 `json:"stats"`
	AverageStats    map[string]float64 `json:"averageStats"`
	AppliedTotal    *float64           `json:"appliedTotal"`
	AppliedAverage  *float64           `json:"appliedAverage"`
}

// seasonResponse carries the pro-team schedules view.
type seasonResponse struct {
	Settings struct {
		ProTeams []proTeamRaw `json:"proTeams"`
	} `json:"settings"`
}

type proTeamRaw struct {
	ID                      int                     `json:"id"`
	Abbrev                  string                  `json:"abbrev"`
	ProGamesByScoringPeriod map[string][]proGameRaw `json:"proGamesByScoringPeriod"`
}

type proGameRaw struct {
	ID   int   `json:"id"`
	Date int64 `json:"date"` // epoch milliseconds
}

// communicationResponse carries the league activity feed.
type communicationResponse struct {
	Topics []topicRaw `json:"topics"`
}

type topicRaw struct {
	Date     int64        `json:"date"` // epoch milliseconds
	Messages []messageRaw `json:"messages"`
}

type messageRaw struct {
	MessageTypeID int `json:"messageTypeId"`
	From          int `json:"from"`
	To            int `json:"to"`
	TargetID      int `json:"targetId"` // player id
}
