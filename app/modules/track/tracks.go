package track

import "strings"

// Track is one MK8DX course, identified by its community abbreviation.
type Track struct {
	Code   string `json:"code"`
	NameEN string `json:"name_en"`
	NickJA string `json:"nick_ja"`
}

// NickEN returns the short English display name used in race summaries.
func (t Track) NickEN() string {
	return t.Code
}

// all48 is the base-game course list. The abbreviation set follows the
// community convention (r = retro, d = DLC cup).
var all48 = []Track{
	{"MKS", "Mario Kart Stadium", "マリカス"},
	{"WP", "Water Park", "ウォーターパーク"},
	{"SSC", "Sweet Sweet Canyon", "スイーツキャニオン"},
	{"TR", "Thwomp Ruins", "ドッスンいせき"},
	{"MC", "Mario Circuit", "マリサ"},
	{"TH", "Toad Harbor", "キノピオハーバー"},
	{"TM", "Twisted Mansion", "ねじれマンション"},
	{"SGF", "Shy Guy Falls", "ヘイホーこうざん"},
	{"SA", "Sunshine Airport", "サンシャインくうこう"},
	{"DS", "Dolphin Shoals", "ドルフィンみさき"},
	{"Ed", "Electrodrome", "エレドリ"},
	{"MW", "Mount Wario", "ワリオスノーマウンテン"},
	{"CC", "Cloudtop Cruise", "スカイガーデン"},
	{"BDD", "Bone-Dry Dunes", "ホネサバ"},
	{"BC", "Bowser's Castle", "クッパキャッスル"},
	{"RR", "Rainbow Road", "レインボーロード"},
	{"rMMM", "Moo Moo Meadows", "モーモーカントリー"},
	{"rMC", "GBA Mario Circuit", "GBAマリサ"},
	{"rCCB", "Cheep Cheep Beach", "プクプクビーチ"},
	{"rTT", "Toad's Turnpike", "キノピオハイウェイ"},
	{"rDDD", "Dry Dry Desert", "カラカラさばく"},
	{"rDP3", "Donut Plains 3", "ドーナツへいや3"},
	{"rRRy", "Royal Raceway", "ピーチサーキット"},
	{"rDKJ", "DK Jungle", "DKジャングル"},
	{"rWS", "Wario Stadium", "ワリスタ"},
	{"rSL", "Sherbet Land", "シャーベットランド"},
	{"rMP", "Music Park", "ミュージックパーク"},
	{"rYV", "Yoshi Valley", "ヨッシーバレー"},
	{"rTTC", "Tick-Tock Clock", "チクタクロック"},
	{"rPPS", "Piranha Plant Slide", "パックンスライダー"},
	{"rGV", "Grumble Volcano", "グラグラかざん"},
	{"rRRd", "N64 Rainbow Road", "64レインボーロード"},
	{"dYC", "Yoshi Circuit", "ヨシサ"},
	{"dEA", "Excitebike Arena", "エキサイトバイク"},
	{"dDD", "Dragon Driftway", "ドラゴンロード"},
	{"dMC", "Mute City", "ミュートシティ"},
	{"dWGM", "Wario's Gold Mine", "ワリこう"},
	{"dRR", "SNES Rainbow Road", "SFCレインボーロード"},
	{"dIIO", "Ice Ice Outpost", "ツルツルツイスター"},
	{"dHC", "Hyrule Circuit", "ハイラルサーキット"},
	{"dBP", "Baby Park", "ベビィパーク"},
	{"dCL", "Cheese Land", "チーズランド"},
	{"dWW", "Wild Woods", "ネイチャーロード"},
	{"dAC", "Animal Crossing", "どうぶつの森"},
	{"dNBC", "Neo Bowser City", "ネオクッパシティ"},
	{"dRiR", "Ribbon Road", "リボンロード"},
	{"dSBS", "Super Bell Subway", "リンリンメトロ"},
	{"dBB", "Big Blue", "ビッグブルー"},
}

// byNick maps normalized nicknames to a course. Built once at init.
var byNick = buildIndex()

func buildIndex() map[string]Track {
	index := make(map[string]Track, len(all48)*3)
	for _, t := range all48 {
		index[normalize(t.Code)] = t
		index[normalize(t.NameEN)] = t
		index[normalize(t.NickJA)] = t
	}
	return index
}

func normalize(nick string) string {
	nick = strings.TrimSpace(nick)
	nick = strings.ToLower(nick)
	return strings.ReplaceAll(nick, " ", "")
}

// FromNick resolves a free-text course nickname. The boolean is false
// when the text does not name a known course.
func FromNick(nick string) (Track, bool) {
	if nick == "" {
		return Track{}, false
	}
	t, ok := byNick[normalize(nick)]
	return t, ok
}

// Nick returns the display name for the requested language.
func (t Track) Nick(ja bool) string {
	if ja {
		return t.NickJA
	}
	return t.NickEN()
}
