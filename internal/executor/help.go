package executor

// helpText enumerates every top-level verb with its accepted phrasings.
const helpText = `📋 Available Commands:
📋 LIST EVENTS - Show all available events
📍 LIST EVENTS IN "location" - Show events in a specific location
🎟️ BOOK "event_id" quantity - Book tickets for an event
🎟️ BOOK "title" ON YYYY-MM-DD FOR "name" - Book one ticket by event name
✅ CONFIRM "booking_code" - Confirm a booking (CONFIRM BOOKING "code" also works)
💳 PAY "booking_code" amount - Make a payment (PAY FOR BOOKING "code" amount also works)
❌ CANCEL "booking_code" - Cancel a booking
🔄 UPDATE "event_id" tickets - Set an event's available tickets
🔁 UPDATE EVENT "title" WITH n NEW TICKETS - Add tickets to an event
➕ ADD type "title" "venue" "location" start end price_min price_max tickets - Add a new event
➕ ADD type "title" AT "venue" IN "location" FROM start TO end PRICE min TO max - Add a new event
❓ HELP - Show this message`
