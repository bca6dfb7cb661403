package constants

// Jenis KI yang dicatat pada daftar_ki.
const (
	KiMerek             = "Merek"
	KiPaten             = "Paten"
	KiHakCipta          = "Hak Cipta"
	KiIndikasiGeografis = "Indikasi Geografis"
	KiDTSL              = "DTSL"
	KiRahasiaDagang     = "Rahasia Dagang"
	KiKomunal           = "KI Komunal"

	// ejaan lama yang masih muncul di data impor
	kiDTLSTAlias = "DTLST"
)

// KiTypes berurutan sesuai tampilan dashboard.
var KiTypes = []string{
	KiMerek,
	KiPaten,
	KiHakCipta,
	KiIndikasiGeografis,
	KiDTSL,
	KiRahasiaDagang,
	KiKomunal,
}

// NormalizeKiType memetakan alias ke nama baku. ok=false bila tidak dikenal.
func NormalizeKiType(t string) (string, bool) {
	if t == kiDTLSTAlias {
		return KiDTSL, true
	}
	for _, k := range KiTypes {
		if k == t {
			return k, true
		}
	}
	return t, false
}

// Label status masa berlaku PKS.
const (
	StatusLabelActive       = "Aktif"
	StatusLabelExpiringSoon = "Akan Habis"
	StatusLabelExpired      = "Kedaluwarsa"
)

// Prefix kode tampilan.
const (
	PrefixPks      = "PKS"
	PrefixSentraKi = "SKI"
)

var MonthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}
