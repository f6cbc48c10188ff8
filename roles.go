package challenge

// KnownRoles are the challenge roles from the narrator's reference list.
// Roles outside this list are accepted but produce a warning.
var KnownRoles = []string{
	"Ambusher",
	"Artillery",
	"Brute",
	"Controller",
	"Decoy",
	"Defender",
	"Guardian",
	"Harrier",
	"Hazard",
	"Infiltrator",
	"Leader",
	"Minion",
	"Obstacle",
	"Pursuer",
	"Schemer",
	"Skirmisher",
	"Support",
	"Tormentor",
}
