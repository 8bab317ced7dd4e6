package espn

import "github.com/mbakke/fastbreak/internal/fantasy"

// statCodes maps ESPN basketball stat IDs to category codes. IDs outside
// this map are dropped during normalization.
var statCodes = map[string]string{
	"0":  fantasy.CatPoints,
	"1":  fantasy.CatBlocks,
	"2":  fantasy.CatSteals,
	"3":  fantasy.CatAssists,
	"6":  fantasy.CatRebounds,
	"11": fantasy.CatTurnover,
	"17": fantasy.CatThrees,
	"19": fantasy.CatFGPct,
	"20": fantasy.CatFTPct,
	"42": fantasy.CatGames,
}

// positions maps defaultPositionId to the display position.
var positions = map[int]string{
	1: "PG",
	2: "SG",
	3: "SF",
	4: "PF",
	5: "C",
}

// proTeams maps proTeamId to the NBA team abbreviation.
var proTeams = map[int]string{
	1:  "ATL",
	2:  "BOS",
	3:  "NOP",
	4:  "CHI",
	5:  "CLE",
	6:  "DAL",
	7:  "DEN",
	8:  "DET",
	9:  "GSW",
	10: "HOU",
	11: "IND",
	12: "LAC",
	13: "LAL",
	14: "MIA",
	15: "MIL",
	16: "MIN",
	17: "BKN",
	18: "NYK",
	19: "ORL",
	20: "PHL",
	21: "PHO",
	22: "POR",
	23: "SAC",
	24: "SAS",
	25: "OKC",
	26: "UTA",
	27: "WAS",
	28: "TOR",
	29: "MEM",
	30: "CHA",
}

// activityActions maps communication messageTypeId to a display action.
// Adds reference the receiving team in `to`; drops the releasing team in
// `from`.
var activityActions = map[int]string{
	178: "FA ADDED",
	179: "DRAFTED",
	180: "WAIVER ADDED",
	181: "WAIVER MOVED",
	239: "DROPPED",
	244: "TRADED",
}

// addActions are the message types whose team is carried in `to`.
var addActions = map[int]bool{178: true, 179: true, 180: true, 244: true}

func positionName(id int) string {
	if p, ok := positions[id]; ok {
		return p
	}
	return "UNK"
}

func proTeamName(id int) string {
	if t, ok := proTeams[id]; ok {
		return t
	}
	return "FA"
}
