package metadata

import "fmt"

type CertificateStatus string

const (
	CertificateDraft     CertificateStatus = "DRAFT"
	CertificateConfirmed CertificateStatus = "CONFIRMED"
	CertificateCompleted CertificateStatus = "COMPLETED"
)

func NewCertificateStatus(value string) (CertificateStatus, error) {
	status := CertificateStatus(value)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid certificate status: %s", value)
	}
	return status, nil
}

func (s CertificateStatus) IsValid() bool {
	switch s {
	case CertificateDraft, CertificateConfirmed, CertificateCompleted:
		return true
	default:
		return false
	}
}

func (s CertificateStatus) String() string {
	return string(s)
}
