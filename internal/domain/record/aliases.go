package record

// Known spellings of the fields upstream sources send. Each list must
// enumerate every casing variant seen in the wild.
var (
	PlayerID    = Aliases{"PlayerID", "playerID", "playerId", "PlayerId"}
	FirstName   = Aliases{"FirstName", "firstName"}
	LastName    = Aliases{"LastName", "lastName"}
	Jersey      = Aliases{"JerseyNumber", "jerseyNumber", "JerseyNum"}
	WNBATeam    = Aliases{"WNBATeamName", "CurrentWNBATeamName", "currentWNBATeamName"}
	Unrivaled   = Aliases{"UnrivaledTeamName", "unrivaledTeamName"}
	College     = Aliases{"College", "college"}
	Position    = Aliases{"Position", "position"}
	Height      = Aliases{"Height", "height"}
	Age         = Aliases{"Age", "age"}
	BirthDate   = Aliases{"BirthDate", "birthDate"}
	Image       = Aliases{"ImageURL", "imageURL", "Image", "image", "profileImage", "ProfileImage"}
	SocialLinks = Aliases{"SocialLinks", "socialLinks"}

	Twitter   = Aliases{"Twitter", "twitter"}
	Instagram = Aliases{"Instagram", "instagram"}
	Facebook  = Aliases{"Facebook", "facebook"}
	TikTok    = Aliases{"TikTok", "tiktok"}
	YouTube   = Aliases{"YouTube", "youtube"}
	Website   = Aliases{"Website", "website"}
)

var (
	GameID       = Aliases{"gameID", "GameID", "gameId"}
	GameDate     = Aliases{"GameDate", "gameDate"}
	GameType     = Aliases{"gameType", "GameType"}
	Season       = Aliases{"season", "Season"}
	PlayerTeam   = Aliases{"playerTeam", "PlayerTeam"}
	OpponentTeam = Aliases{"opponentTeam", "OpponentTeam"}
	TeamPoints   = Aliases{"playerTeamPoints"}
	OppPoints    = Aliases{"opponentTeamPoints"}
	Minutes      = Aliases{"minutesPlayed"}
	Points       = Aliases{"playerPoints"}
	FieldGoals   = Aliases{"playerFG", "PlayerFG"}
	ThreePoint   = Aliases{"player3PT", "player3pt", "Player3PT"}
	FreeThrows   = Aliases{"playerFT", "PlayerFT"}
	Rebounds     = Aliases{"playerRebounds"}
	Assists      = Aliases{"playerAssists"}
	Steals       = Aliases{"playerSteals"}
	Blocks       = Aliases{"playerBlocks"}
	Turnovers    = Aliases{"playerTurnovers"}
	Fouls        = Aliases{"playerFouls"}

	FullGameVideo = Aliases{"fullGameVideo", "fullgamevideo", "full_game_video"}
	Highlights    = Aliases{"highlights", "Highlights"}
	Interviews    = Aliases{"interviews", "Interviews", "interviewsList"}
	MediaURL      = Aliases{"url", "link"}
	MediaTitle    = Aliases{"title", "label"}

	// Games is the nested array some endpoints wrap their results in.
	Games = Aliases{"games"}
)
