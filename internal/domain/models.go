package domain

type PlayerIdentity struct {
	Puuid         string `json:"puuid"`
	GameName      string `json:"gameName"`
	TagLine       string `json:"tagLine"`
	SummonerID    string `json:"summonerId,omitempty"`
	AccountID     string `json:"accountId,omitempty"`
	ProfileIconID int    `json:"profileIconId"`
	RevisionDate  int64  `json:"revisionDate"`
	SummonerLevel int64  `json:"summonerLevel"`
}

type RankEntry struct {
	LeagueID     string `json:"leagueId"`
	QueueType    string `json:"queueType"`
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	Puuid        string `json:"puuid"`
	SummonerID   string `json:"summonerId,omitempty"`
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	Veteran      bool   `json:"veteran"`
	Inactive     bool   `json:"inactive"`
	FreshBlood   bool   `json:"freshBlood"`
	HotStreak    bool   `json:"hotStreak"`
}

type MatchSummary struct {
	MatchID            string `json:"matchId"`
	ChampionID         int    `json:"championId"`
	ChampionName       string `json:"champion"`
	Level              int    `json:"level"`
	KDA                string `json:"kda"` // "kills/deaths/assists"
	Win                bool   `json:"win"`
	Items              [7]int `json:"items"`
	Name               string `json:"name"`
	Tag                string `json:"tag"`
	Position           string `json:"position"`
	CS                 int    `json:"cs"`
	Damage             int    `json:"damage"`
	Vision             int    `json:"vision"`
	Duration           int64  `json:"duration"`
	GameMode           string `json:"gameMode"`
	QueueID            int    `json:"queueId"`
	GameStartTimestamp int64  `json:"gameStartTimestamp"`
	Spells             Spells `json:"spells"`
	Runes              Runes  `json:"runes"`
	Teams              Teams  `json:"teams"`
}

// TeamMember is the per-participant projection used in Teams.
type TeamMember struct {
	Name     string `json:"name"`
	Champion string `json:"champion"`
	Items    [7]int `json:"items"`
	Spells   Spells `json:"spells"`
	Runes    Runes  `json:"runes"`
	KDA      string `json:"kda"`
	CS       int    `json:"cs"`
	Damage   int    `json:"damage"`
	Vision   int    `json:"vision"`
	Position string `json:"position"`
}

type Teams struct {
	Ally  []TeamMember `json:"ally"`
	Enemy []TeamMember `json:"enemy"`
}

type Spells struct {
	Spell1ID int `json:"spell1Id"`
	Spell2ID int `json:"spell2Id"`
}

type Runes struct {
	PrimaryStyle *RuneStyle `json:"primaryStyle,omitempty"`
	SubStyle     *RuneStyle `json:"subStyle,omitempty"`
	StatPerks    StatPerks  `json:"statPerks"`
}

type RuneStyle struct {
	Description string          `json:"description"`
	Selections  []RuneSelection `json:"selections"`
	Style       int             `json:"style"`
}

type RuneSelection struct {
	Perk int `json:"perk"`
	Var1 int `json:"var1"`
	Var2 int `json:"var2"`
	Var3 int `json:"var3"`
}

type StatPerks struct {
	Defense int `json:"defense"`
	Flex    int `json:"flex"`
	Offense int `json:"offense"`
}
