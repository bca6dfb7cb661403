package livequery

// Topik perubahan per tabel.
const (
	TopicInstansi     = "instansi"
	TopicSentraKi     = "sentra_ki"
	TopicPks          = "pks"
	TopicDaftarKi     = "daftar_ki"
	TopicPermohonanKi = "permohonan_ki"
	TopicInformasiKi  = "informasi_ki"
	TopicUsers        = "users"
)
