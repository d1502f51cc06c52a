package eagle

import "fmt"

// Cosmetics selects sprite and backdrop assets. It never affects the
// simulation.
type Cosmetics struct {
	SkinID       string
	TypeID       int
	BackgroundID string
}

// DefaultCosmetics is the look of a fresh profile.
var DefaultCosmetics = Cosmetics{SkinID: "default", TypeID: 1, BackgroundID: "default"}

const eagleFrames = 2

var backgroundAssets = map[string]string{
	"default": "sunsetBg",
	"sunset":  "sunsetBg",
	"night":   "nightBg",
	"storm":   "stormBg",
	"dawn":    "dawnBg",
}

// EagleFrame returns the asset name of animation frame n.
func (c Cosmetics) EagleFrame(n int) string {
	frame := n%eagleFrames + 1
	prefix := c.SkinID
	if prefix == "" || prefix == "default" {
		prefix = "eagle"
	}
	return fmt.Sprintf("%s%d%d", prefix, c.TypeID, frame)
}

// BackgroundAsset returns the backdrop asset name. Unknown ids fall back
// to the default backdrop.
func (c Cosmetics) BackgroundAsset() string {
	if name, ok := backgroundAssets[c.BackgroundID]; ok {
		return name
	}
	return backgroundAssets["default"]
}
