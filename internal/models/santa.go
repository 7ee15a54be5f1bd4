package models

// Participant is a person taking part in the exchange.
// Group is the category label used by the forbidden rules; an empty Group
// means the participant has no group data.
type Participant struct {
	Name  string `json:"nombre" yaml:"nombre"`
	Group string `json:"grupo" yaml:"grupo"`
}

// Pair links a giver to the participant they buy a gift for.
type Pair struct {
	Giver    Participant
	Receiver Participant
}

// ForbiddenRules maps a giver group to the receiver groups its members
// may not gift into.
type ForbiddenRules map[string][]string

// Forbids reports whether a member of giverGroup may not gift to receiverGroup.
func (r ForbiddenRules) Forbids(giverGroup, receiverGroup string) bool {
	for _, g := range r[giverGroup] {
		if g == receiverGroup {
			return true
		}
	}
	return false
}

// AccessRecord is one entry of the full records file.
type AccessRecord struct {
	ParticipantName  string `json:"nombre_participante"`
	AccessCode       string `json:"codigo_acceso"`
	SecretFriendName string `json:"nombre_amigo_secreto"`
}

// PublicRecord is the projection of AccessRecord that is safe to list:
// it never carries the secret friend.
type PublicRecord struct {
	ParticipantName string `json:"nombre_participante"`
	AccessCode      string `json:"codigo_acceso"`
}

// Public returns the listing-safe projection of the record.
func (r AccessRecord) Public() PublicRecord {
	return PublicRecord{ParticipantName: r.ParticipantName, AccessCode: r.AccessCode}
}
