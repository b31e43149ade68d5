package report

import (
	"time"

	inquiryDto "grandhotel/internal/domains/inquiry/model/dto"
	"grandhotel/shared/constant"
	"grandhotel/shared/timezone"
)

var inquiryHeader = []string{"ID", "Name", "Email", "Message", "Date"}

// InquiriesCSV renders one header line plus one line per inquiry. The message column is always
// quoted since free text is where quotes show up.
func InquiriesCSV(inquiries []inquiryDto.InquiryResponse) string {
	rows := make([][]string, len(inquiries))

	for i, inq := range inquiries {
		rows[i] = []string{
			csvField(inq.ID),
			csvField(inq.Name),
			csvField(inq.Email),
			quoted(inq.Message),
			inquiryDate(inq.CreatedAt),
		}
	}

	return joinCSV(inquiryHeader, rows)
}

func inquiryDate(createdAt string) string {
	t, err := time.Parse(constant.DateFormat, createdAt)
	if err != nil {
		return constant.Empty
	}

	return timezone.Format(t, constant.DateOnlyFormat)
}
