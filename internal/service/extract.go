package service

import (
	"fmt"
	"lol-tracker/internal/api"
	"lol-tracker/internal/domain"
)

const (
	primaryStyleLabel = "primaryStyle"
	subStyleLabel     = "subStyle"
)

func buildSummary(matchID string, match *api.MatchResponse, p *api.Participant) domain.MatchSummary {
	return domain.MatchSummary{
		MatchID:            matchID,
		ChampionID:         p.ChampionID,
		ChampionName:       p.ChampionName,
		Level:              p.ChampLevel,
		KDA:                kda(p),
		Win:                p.Win,
		Items:              items(p),
		Name:               displayName(p),
		Tag:                p.RiotIDTagline,
		Position:           p.IndividualPosition,
		CS:                 p.TotalMinionsKilled,
		Damage:             p.TotalDamageDealtToChampions,
		Vision:             p.VisionScore,
		Duration:           match.Info.GameDuration,
		GameMode:           match.Info.GameMode,
		QueueID:            match.Info.QueueID,
		GameStartTimestamp: match.Info.GameStartTimestamp,
		Spells:             spells(p),
		Runes:              runes(p.Perks),
		Teams:              splitTeams(match.Info.Participants, p.TeamID),
	}
}

// splitTeams puts every participant on teamID into Ally and the rest into Enemy.
func splitTeams(participants []api.Participant, teamID int) domain.Teams {
	teams := domain.Teams{
		Ally:  make([]domain.TeamMember, 0, len(participants)/2),
		Enemy: make([]domain.TeamMember, 0, len(participants)/2),
	}
	for i := range participants {
		p := &participants[i]
		if p.TeamID == teamID {
			teams.Ally = append(teams.Ally, teamMember(p))
		} else {
			teams.Enemy = append(teams.Enemy, teamMember(p))
		}
	}
	return teams
}

func teamMember(p *api.Participant) domain.TeamMember {
	return domain.TeamMember{
		Name:     displayName(p),
		Champion: p.ChampionName,
		Items:    items(p),
		Spells:   spells(p),
		Runes:    runes(p.Perks),
		KDA:      kda(p),
		CS:       p.TotalMinionsKilled,
		Damage:   p.TotalDamageDealtToChampions,
		Vision:   p.VisionScore,
		Position: p.IndividualPosition,
	}
}

// displayName prefers the Riot ID game name over the legacy summoner name.
func displayName(p *api.Participant) string {
	if p.RiotIDGameName != "" {
		return p.RiotIDGameName
	}
	return p.SummonerName
}

func kda(p *api.Participant) string {
	return fmt.Sprintf("%d/%d/%d", p.Kills, p.Deaths, p.Assists)
}

func items(p *api.Participant) [7]int {
	return [7]int{p.Item0, p.Item1, p.Item2, p.Item3, p.Item4, p.Item5, p.Item6}
}

func spells(p *api.Participant) domain.Spells {
	return domain.Spells{Spell1ID: p.Summoner1ID, Spell2ID: p.Summoner2ID}
}

func runes(perks api.Perks) domain.Runes {
	return domain.Runes{
		PrimaryStyle: findStyle(perks.Styles, primaryStyleLabel),
		SubStyle:     findStyle(perks.Styles, subStyleLabel),
		StatPerks: domain.StatPerks{
			Defense: perks.StatPerks.Defense,
			Flex:    perks.StatPerks.Flex,
			Offense: perks.StatPerks.Offense,
		},
	}
}

func findStyle(styles []api.PerkStyle, label string) *domain.RuneStyle {
	for _, st := range styles {
		if st.Description != label {
			continue
		}
		selections := make([]domain.RuneSelection, len(st.Selections))
		for i, sel := range st.Selections {
			selections[i] = domain.RuneSelection{Perk: sel.Perk, Var1: sel.Var1, Var2: sel.Var2, Var3: sel.Var3}
		}
		return &domain.RuneStyle{Description: st.Description, Selections: selections, Style: st.Style}
	}
	return nil
}
