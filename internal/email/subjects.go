package email

const (
	subjectWelcome = "Welcome to DealFinder premium placement"
	subjectExpiry  = "Your DealFinder placement has ended"
)
