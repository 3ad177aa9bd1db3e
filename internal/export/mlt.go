package export

import (
	"encoding/xml"
	"fmt"
	"time"

	"supercut/internal/engine"
)

const (
	xmlHeader  = `<?xml version="1.0" standalone="no"?>` + "\n"
	mltVersion = "7.23.0"
)

type mltProperty struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

type mltChain struct {
	ID         string        `xml:"id,attr"`
	Properties []mltProperty `xml:"property"`
}

type mltEntry struct {
	Producer string `xml:"producer,attr"`
	In       string `xml:"in,attr,omitempty"`
	Out      string `xml:"out,attr,omitempty"`
}

type mltPlaylist struct {
	ID         string        `xml:"id,attr"`
	Properties []mltProperty `xml:"property"`
	Entries    []mltEntry    `xml:"entry"`
}

type mltTrack struct {
	Producer string `xml:"producer,attr"`
}

type mltTractor struct {
	ID         string        `xml:"id,attr"`
	Title      string        `xml:"title,attr"`
	In         string        `xml:"in,attr"`
	Out        string        `xml:"out,attr"`
	Properties []mltProperty `xml:"property"`
	Tracks     []mltTrack    `xml:"track"`
}

type mltDocument struct {
	XMLName   xml.Name      `xml:"mlt"`
	LCNumeric string        `xml:"LC_NUMERIC,attr"`
	Version   string        `xml:"version,attr"`
	Title     string        `xml:"title,attr"`
	Producer  string        `xml:"producer,attr"`
	Chains    []mltChain    `xml:"chain"`
	Playlists []mltPlaylist `xml:"playlist"`
	Tractor   mltTractor    `xml:"tractor"`
}

// MLT renders a clip plan as a Shotcut project. Shotcut needs a distinct
// chain producer for every use of a video, including the one referenced
// from the main bin, so each segment gets its own chain and the first
// occurrence of each source gets an extra main-bin chain.
func MLT(title string, plan engine.Plan) (string, error) {
	var (
		chains     []mltChain
		entries    []mltEntry
		mainBinIDs []string
	)
	seen := map[string]bool{}

	for i, segment := range plan.Segments {
		chainID := fmt.Sprintf("chain%d", i)
		ids := []string{chainID}
		if !seen[segment.Source] {
			seen[segment.Source] = true
			mainBinID := fmt.Sprintf("main_bin_chain%d", i)
			ids = append(ids, mainBinID)
			mainBinIDs = append(mainBinIDs, mainBinID)
		}
		for _, id := range ids {
			chains = append(chains, mltChain{
				ID:         id,
				Properties: []mltProperty{{Name: "resource", Value: segment.Source}},
			})
		}
		entries = append(entries, mltEntry{
			Producer: chainID,
			In:       mltTimecode(segment.Start),
			Out:      mltTimecode(segment.End),
		})
	}

	mainBin := mltPlaylist{
		ID:         "main_bin",
		Properties: []mltProperty{{Name: "xml_retain", Value: "1"}},
	}
	for _, id := range mainBinIDs {
		mainBin.Entries = append(mainBin.Entries, mltEntry{Producer: id})
	}

	doc := mltDocument{
		LCNumeric: "C",
		Version:   mltVersion,
		Title:     title,
		Producer:  "main_bin",
		Chains:    chains,
		Playlists: []mltPlaylist{
			mainBin,
			{ID: "background"},
			{ID: "playlist0", Entries: entries},
		},
		Tractor: mltTractor{
			ID:    "tractor1",
			Title: title,
			In:    mltTimecode(0),
			Out:   mltTimecode(plan.Duration()),
			Properties: []mltProperty{
				{Name: "shotcut", Value: "1"},
				{Name: "shotcut:projectAudioChannels", Value: "2"},
				{Name: "shotcut:projectFolder", Value: "1"},
			},
			Tracks: []mltTrack{
				{Producer: "background"},
				{Producer: "playlist0"},
			},
		},
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal mlt project: %w", err)
	}
	return xmlHeader + string(body) + "\n", nil
}

// mltTimecode renders hh:mm:ss.mmm as Shotcut expects.
func mltTimecode(d time.Duration) string {
	totalSeconds := d.Seconds()
	seconds := totalSeconds - float64(int(totalSeconds)/60*60)
	minutes := (int(totalSeconds) / 60) % 60
	hours := int(totalSeconds) / 3600
	return fmt.Sprintf("%02d:%02d:%06.3f", hours, minutes, seconds)
}
