package conversation

// Command keywords recognized from the chat transport.
const (
	cmdStart      = "/start"
	cmdBook       = "/book"
	cmdMyBookings = "/my"

	kwBook       = "Book a session"
	kwMyBookings = "My bookings"
	kwConfirm    = "Confirm"
	kwCancel     = "Cancel"
)

// Admin chat commands.
const (
	cmdAdminList   = "/list"
	cmdAdminDone   = "/done"
	cmdAdminCancel = "/cancel"
)

const (
	msgGreeting = "Hi! I book photo sessions. What would you like to do?"
	msgIdleHint = "Send /start to begin."

	msgAskShootType     = "Pick a session type:"
	msgUnknownShootType = "Please pick one of the listed session types."

	msgAskDate     = "Send a date, e.g. 01.06.2025"
	msgBadDate     = "I couldn't read that date. Use dd.mm.yyyy, e.g. 01.06.2025"
	msgDateTooFar  = "That date is too far ahead. Pick something closer."
	msgNoFreeTimes = "No free times on that date. Send another date."

	msgAskTime         = "Pick a time:"
	msgTimeUnavailable = "That time is not available. Pick one of the open times."

	msgAskPhone = "Share your contact or type a phone number, e.g. +79990000000"
	msgBadPhone = "That doesn't look like a phone number. Try again."

	msgConfirmPrompt = "Confirm the booking?"
	msgSlotStolen    = "Sorry, that slot was just taken. Pick another time:"
	msgCommitFailed  = "Something went wrong on our side. Send Confirm to retry."
	msgBooked        = "Done! Your session is booked. The photographer will reach out."
	msgCancelled     = "Booking flow cancelled. Send /start whenever you're ready."

	msgNoBookings    = "You have no active bookings."
	msgSelfCancelled = "Your booking is cancelled."
	msgNotYours      = "That booking is not yours."
	msgNotFound      = "No such booking."
)
