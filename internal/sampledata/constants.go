package sampledata

// File names written by Write, matching the build defaults.
const (
	PlayersFile  = "players_kpi.parquet"
	RankingsFile = "player_rankings.parquet"
)

// Match history shape.
const (
	maxMatches   = 15
	seasonStart  = "2024-08-03"
	matchSpacing = 7 // days
	maxMinutes   = 90
)

var positions = []string{"Goalkeeper", "Defender", "Midfielder", "Forward"}

var clubs = []string{
	"fc-porto",
	"olympique-lyonnais",
	"real-betis",
	"ajax-amsterdam",
	"celtic-fc",
	"sporting-cp",
	"rc-lens",
	"bayer-leverkusen",
}

var firstNames = []string{
	"José", "Zoë", "Luka", "Mateo", "Noah", "Émile", "Kenji", "Aarav",
	"Leon", "Théo", "Ilkay", "Sami", "Oscar", "Dani", "Björn", "Rui",
}

var lastNames = []string{
	"Núñez", "Silva", "Kovač", "Moreau", "Okafor", "Jensen", "Tanaka",
	"Schmidt", "Dubois", "Álvarez", "Novak", "Costa", "Meyer", "Lindqvist",
}
