package api

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownRegion = errors.New("unknown region")

// Routing holds the hosts a region's requests go to. Platform serves
// summoner and league data, Regional serves match data and Account serves
// account-v1, which has no sea cluster.
type Routing struct {
	Platform string
	Regional string
	Account  string
}

var platformRouting = map[string]Routing{
	"kr":   {Platform: "kr", Regional: "asia", Account: "asia"},
	"jp1":  {Platform: "jp1", Regional: "asia", Account: "asia"},
	"na1":  {Platform: "na1", Regional: "americas", Account: "americas"},
	"br1":  {Platform: "br1", Regional: "americas", Account: "americas"},
	"la1":  {Platform: "la1", Regional: "americas", Account: "americas"},
	"la2":  {Platform: "la2", Regional: "americas", Account: "americas"},
	"euw1": {Platform: "euw1", Regional: "europe", Account: "europe"},
	"eun1": {Platform: "eun1", Regional: "europe", Account: "europe"},
	"tr1":  {Platform: "tr1", Regional: "europe", Account: "europe"},
	"ru":   {Platform: "ru", Regional: "europe", Account: "europe"},
	"me1":  {Platform: "me1", Regional: "europe", Account: "europe"},
	"oc1":  {Platform: "oc1", Regional: "sea", Account: "asia"},
	"ph2":  {Platform: "ph2", Regional: "sea", Account: "asia"},
	"sg2":  {Platform: "sg2", Regional: "sea", Account: "asia"},
	"th2":  {Platform: "th2", Regional: "sea", Account: "asia"},
	"tw2":  {Platform: "tw2", Regional: "sea", Account: "asia"},
	"vn2":  {Platform: "vn2", Regional: "sea", Account: "asia"},
}

// short names players use for their server
var regionAliases = map[string]string{
	"jp":   "jp1",
	"na":   "na1",
	"br":   "br1",
	"lan":  "la1",
	"las":  "la2",
	"euw":  "euw1",
	"eune": "eun1",
	"tr":   "tr1",
	"me":   "me1",
	"oce":  "oc1",
	"ph":   "ph2",
	"sg":   "sg2",
	"th":   "th2",
	"tw":   "tw2",
	"vn":   "vn2",
}

// ResolveRouting maps a region (platform id or alias, case insensitive) to
// its routing hosts. An empty region resolves fallback instead.
func ResolveRouting(region, fallback string) (Routing, error) {
	key := strings.ToLower(strings.TrimSpace(region))
	if key == "" {
		key = strings.ToLower(strings.TrimSpace(fallback))
	}
	if alias, ok := regionAliases[key]; ok {
		key = alias
	}
	routing, ok := platformRouting[key]
	if !ok {
		return Routing{}, fmt.Errorf("%w: %q", ErrUnknownRegion, region)
	}
	return routing, nil
}
