package league

// Attr names a single player attribute.
type Attr string

const (
	AttrSpeed            Attr = "speed"
	AttrStrength         Attr = "strength"
	AttrAgility          Attr = "agility"
	AttrStamina          Attr = "stamina"
	AttrHeight           Attr = "height"
	AttrWeight           Attr = "weight"
	AttrPlaybookIQ       Attr = "playbookIQ"
	AttrClutch           Attr = "clutch"
	AttrConsistency      Attr = "consistency"
	AttrToughness        Attr = "toughness"
	AttrThrowingAccuracy Attr = "throwingAccuracy"
	AttrCatchingHands    Attr = "catchingHands"
	AttrTackling         Attr = "tackling"
	AttrBlocking         Attr = "blocking"
	AttrBlockShedding    Attr = "blockShedding"
)

// AllAttrs lists every attribute in a stable order.
var AllAttrs = []Attr{
	AttrSpeed, AttrStrength, AttrAgility, AttrStamina, AttrHeight, AttrWeight,
	AttrPlaybookIQ, AttrClutch, AttrConsistency, AttrToughness,
	AttrThrowingAccuracy, AttrCatchingHands, AttrTackling, AttrBlocking, AttrBlockShedding,
}

// Valid reports whether a is a known attribute.
func (a Attr) Valid() bool {
	for _, k := range AllAttrs {
		if k == a {
			return true
		}
	}
	return false
}

// Position is a base football position. Slot names are a position prefix
// plus an index, e.g. "WR2".
type Position string

const (
	QB Position = "QB"
	RB Position = "RB"
	WR Position = "WR"
	TE Position = "TE"
	OL Position = "OL"
	DL Position = "DL"
	LB Position = "LB"
	CB Position = "CB"
	S  Position = "S"
)

// OffensePositions and DefensePositions list base positions per side.
var (
	OffensePositions = []Position{QB, RB, WR, TE, OL}
	DefensePositions = []Position{DL, LB, CB, S}
	AllPositions     = []Position{QB, RB, WR, TE, OL, DL, LB, CB, S}
)

// SlotPosition extracts the base position from a slot name ("WR2" -> WR).
func SlotPosition(slot string) Position {
	end := len(slot)
	for end > 0 && slot[end-1] >= '0' && slot[end-1] <= '9' {
		end--
	}
	return Position(slot[:end])
}

// Side is offense or defense.
type Side string

const (
	Offense Side = "offense"
	Defense Side = "defense"
)
