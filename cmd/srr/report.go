package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/condor/sage-replay-reader/pkg/sage"
)

func yesNo(b bool) string {
	if b {
		return "Ja"
	}
	return "Nein"
}

func writeSummary(w io.Writer, meta *sage.ReplayMetadata) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Datei:\t%s (%s)\n", meta.FileName, sage.FormatSize(meta.Size))
	fmt.Fprintf(tw, "Spiel:\t%s %s\n", meta.Variant, meta.Version)
	fmt.Fprintf(tw, "Name:\t%s\n", meta.GameName)
	if meta.Description != "" {
		fmt.Fprintf(tw, "Beschreibung:\t%s\n", meta.Description)
	}
	official := ""
	if meta.Official {
		official = " (offiziell)"
	}
	fmt.Fprintf(tw, "Karte:\t%s%s\n", meta.MapName, official)
	if meta.HasMapPicture {
		fmt.Fprintf(tw, "Kartenbild:\t%s\n", meta.MapPicture)
	}
	fmt.Fprintf(tw, "Datum:\t%s\n", sage.FormatTimestamp(meta.Timestamp, time.Local))
	fmt.Fprintf(tw, "Dauer:\t%s\n", sage.FormatDuration(meta.DurationSec))
	fmt.Fprintf(tw, "Match:\t%s\n", meta.MatchType)

	r := meta.Rules
	fmt.Fprintf(tw, "Spieltyp:\t%s\n", r.GameType)
	fmt.Fprintf(tw, "Geschwindigkeit:\t%d%%\n", r.GameSpeed)
	fmt.Fprintf(tw, "Startkapital:\t%d\n", r.StartingCash)
	fmt.Fprintf(tw, "BattleCast:\t%s (Verzögerung %d min)\n", yesNo(r.BattleCast), r.BattleCastDelay)
	fmt.Fprintf(tw, "VoIP:\t%s\n", yesNo(r.VoIP))
	fmt.Fprintf(tw, "Kisten:\t%s\n", yesNo(r.RandomCrates))
	if ext := r.Extension; ext != nil {
		fmt.Fprintf(tw, "Zeitlimit:\t%s\n", sage.FormatTimeLimit(ext.TimeLimit))
		fmt.Fprintf(tw, "Effektivität:\t%s\n", ext.Effectiveness)
		fmt.Fprintf(tw, "Siegpunkte:\t%d\n", ext.WinPoints)
		fmt.Fprintf(tw, "Karte aufgedeckt:\t%s\n", yesNo(ext.RevealMap))
		fmt.Fprintf(tw, "Zielpunkte:\tx%d\n", ext.AimPoints)
		fmt.Fprintf(tw, "Abschusspunkte:\tx%d\n", ext.KillPoints)
	}
	tw.Flush()

	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Slot\tTyp\tName\tRolle\tFraktion\tFarbe\tTeam\tPosition\tHandicap")
	for _, p := range meta.Players {
		name := p.Name
		if p.Kind == sage.PlayerComputer {
			name = fmt.Sprintf("%s (%s)", p.Difficulty, p.AIType)
		} else if p.Clan != "" {
			name = fmt.Sprintf("[%s] %s", p.Clan, p.Name)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			p.Slot, p.Kind, name, p.Role, p.Faction, p.Color,
			p.TeamLabel(), p.PositionLabel(), p.HandicapLabel())
	}
	tw.Flush()
	fmt.Fprintln(w)
}
