package telegram

import (
	"sort"
	"time"
)

type idAnchor struct {
	userID   int64
	unixMsec int64
}

// Known user ids with their registration time. User ids grow over time, so
// dates for ids in between are interpolated.
var anchors = []idAnchor{
	{2768409, 1383264000000},
	{7679610, 1388448000000},
	{11538514, 1391212000000},
	{15835244, 1392940000000},
	{23646077, 1393459000000},
	{38015510, 1393632000000},
	{44634663, 1399334000000},
	{46145305, 1400198000000},
	{54845238, 1411257000000},
	{63263518, 1414454000000},
	{101260938, 1425600000000},
	{101323197, 1426204000000},
	{111220210, 1429574000000},
	{103258382, 1432771000000},
	{103151531, 1433376000000},
	{116812045, 1437696000000},
	{122600695, 1437782000000},
	{109393468, 1439078000000},
	{112594714, 1439683000000},
	{124872445, 1439856000000},
	{130029930, 1441324000000},
	{125828524, 1444003000000},
	{133909606, 1444176000000},
	{157242073, 1446768000000},
	{143445125, 1448928000000},
	{148670295, 1452211000000},
	{152079341, 1453420000000},
	{171295414, 1457481000000},
	{181783990, 1460246000000},
	{222021233, 1465344000000},
	{225034354, 1466208000000},
	{278941742, 1473465000000},
	{285253072, 1476835000000},
	{294851037, 1479600000000},
	{297621225, 1481846000000},
	{328594461, 1482969000000},
	{337808429, 1487707000000},
	{341546272, 1487782000000},
	{352940995, 1487894000000},
	{369669043, 1490918000000},
	{400169472, 1501459000000},
	{805158066, 1563208000000},
	{1974255900, 1634000000000},
}

func init() {
	sort.Slice(anchors, func(i, j int) bool { return anchors[i].userID < anchors[j].userID })
}

// EstimateRegistration guesses when a Telegram account was created from its
// user id. ok is false for ids outside the known range, in which case the
// nearest anchor date is returned.
func EstimateRegistration(userID int64) (t time.Time, ok bool) {
	first, last := anchors[0], anchors[len(anchors)-1]
	switch {
	case userID < first.userID:
		return time.UnixMilli(first.unixMsec).UTC(), false
	case userID > last.userID:
		return time.UnixMilli(last.unixMsec).UTC(), false
	}

	i := sort.Search(len(anchors), func(i int) bool { return anchors[i].userID >= userID })
	upper := anchors[i]
	if upper.userID == userID || i == 0 {
		return time.UnixMilli(upper.unixMsec).UTC(), true
	}
	lower := anchors[i-1]

	ratio := float64(userID-lower.userID) / float64(upper.userID-lower.userID)
	msec := lower.unixMsec + int64(ratio*float64(upper.unixMsec-lower.unixMsec))
	return time.UnixMilli(msec).UTC(), true
}

// EstimateAccountYear returns the estimated registration year, or 0 for
// non-user ids.
func EstimateAccountYear(userID int64) int {
	if userID <= 0 {
		return 0
	}
	t, _ := EstimateRegistration(userID)
	return t.Year()
}
