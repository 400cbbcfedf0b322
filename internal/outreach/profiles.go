// Package outreach implements the message-generation core: request
// normalization, context derivation, prompt assembly, invocation of the
// text-generation provider and post-processing of the result.
package outreach

import "leadreach/internal/domain"

// StyleProfile describes how a message style shapes the generated text.
type StyleProfile struct {
	Tone         string
	AllowsEmojis bool
	Formality    string
}

// TargetProfile describes the purpose behind an outreach message.
type TargetProfile struct {
	Purpose      string
	CallToAction string
}

// LengthProfile bounds the size of a generated message. MaxChars is advisory:
// it is declared in the prompt but never enforced on the result.
type LengthProfile struct {
	MaxChars    int
	Description string
}

// styleProfiles has exactly one entry per domain.MessageStyle value. Styles
// are defaulted before lookup, so misses cannot happen at runtime.
var styleProfiles = map[domain.MessageStyle]StyleProfile{
	domain.StyleProfessional: {Tone: "confident and professional", AllowsEmojis: false, Formality: "business professional"},
	domain.StyleFriendly:     {Tone: "warm and approachable", AllowsEmojis: true, Formality: "conversational"},
	domain.StyleCasual:       {Tone: "relaxed and casual", AllowsEmojis: true, Formality: "informal"},
	domain.StyleFormal:       {Tone: "courteous and formal", AllowsEmojis: false, Formality: "strictly formal"},
	domain.StyleEnthusiastic: {Tone: "energetic and enthusiastic", AllowsEmojis: true, Formality: "upbeat conversational"},
}

// targetProfiles has exactly one entry per domain.MessageTarget value.
var targetProfiles = map[domain.MessageTarget]TargetProfile{
	domain.TargetConnection:    {Purpose: "establish a genuine professional connection", CallToAction: "invite them to connect"},
	domain.TargetBusiness:      {Purpose: "open a business development conversation", CallToAction: "propose a brief call to explore working together"},
	domain.TargetRecruitment:   {Purpose: "introduce a relevant career opportunity", CallToAction: "ask whether they are open to hearing about the role"},
	domain.TargetNetworking:    {Purpose: "expand professional networks and exchange ideas", CallToAction: "suggest exchanging insights or a short chat"},
	domain.TargetEvent:         {Purpose: "invite them to a relevant industry event", CallToAction: "ask whether they would like to attend"},
	domain.TargetCollaboration: {Purpose: "explore a potential collaboration", CallToAction: "ask whether they are open to exploring a collaboration"},
}

// lengthProfiles has exactly one entry per domain.MessageLength value.
var lengthProfiles = map[domain.MessageLength]LengthProfile{
	domain.LengthShort:    {MaxChars: 200, Description: "a brief greeting with one personalized hook"},
	domain.LengthStandard: {MaxChars: 400, Description: "a balanced message with personalization and context"},
	domain.LengthDetailed: {MaxChars: 500, Description: "a fuller message with richer personalization"},
}

// StyleProfileFor returns the profile for a resolved style.
func StyleProfileFor(s domain.MessageStyle) StyleProfile { return styleProfiles[s] }

// TargetProfileFor returns the profile for a resolved target.
func TargetProfileFor(t domain.MessageTarget) TargetProfile { return targetProfiles[t] }

// LengthProfileFor returns the profile for a resolved length.
func LengthProfileFor(l domain.MessageLength) LengthProfile { return lengthProfiles[l] }
