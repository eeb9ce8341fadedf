package constants

// 시스템 시작/구동 시 발생할 수 있는 크리티컬한 패닉 메시지 상수입니다.
const (
	// PanicMsgAppConfigRequired 패닉 메시지: AppConfig 필수
	PanicMsgAppConfigRequired = "AppConfig는 필수입니다"

	// PanicMsgCredentialSourceRequired 패닉 메시지: CredentialSource 필수
	PanicMsgCredentialSourceRequired = "CredentialSource는 필수입니다"

	// PanicMsgRecordFetcherRequired 패닉 메시지: RecordFetcher 필수
	PanicMsgRecordFetcherRequired = "RecordFetcher는 필수입니다"
)
