package game

// Icons is the catalog tiles are dealt from.
var Icons = []string{
	"🍎", "🍌", "🍇", "🍓",
	"🍒", "🍍", "🥝", "🍉",
	"🍋", "🍑", "🥥", "🍐",
	"🥕", "🌽", "🍄", "🥑",
}
