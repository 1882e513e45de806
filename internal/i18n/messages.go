package i18n

type text struct{ en, zh string }

var messages = map[string]text{
	// coordinate expressions, keyed by coorexpr.Kind
	"InvalidArgument":              {"Invalid coordinate list", "無效的座標列表"},
	"OutOfRange":                   {"House size is out of range", "電影院大小超出範圍"},
	"EmptyCoordinate":              {"Empty coordinate", "座標為空"},
	"InvalidCharacter":             {"Invalid character inside coordinate expression", "座標表達式中有無效字元"},
	"NoStartingCoordinate":         {"Starting coordinate not given", "未提供起始座標"},
	"NoEndingCoordinate":           {"Ending coordinate not given", "未提供結束座標"},
	"MoreThanOneColon":             {"More than one colon in a coordinate expression", "座標表達式中有多於一個冒號"},
	"NoRowCoordinate":              {"No row coordinate", "沒有行座標"},
	"NoColumnCoordinate":           {"No column coordinate", "沒有列座標"},
	"ColumnCoordinatesAtTwoSide":   {"Two column coordinates given in a single seat coordinate", "單一座位座標中有兩個列座標"},
	"RowCoordinatesAtTwoSide":      {"Two row coordinates given in a single seat coordinate", "單一座位座標中有兩個行座標"},
	"AlphabetCharacterInRowNumber": {"Column coordinate has more than one letter", "列座標多於一個字母"},
	"RowNumberIsZero":              {"Row number cannot be 0 (row number starts with 1)", "行號不可為零（行號由一開始）"},
	"SameCoordinates":              {"Two same coordinates", "兩個座標相同"},
	"CoordinatesWrongOrder":        {"Wrong order of the two coordinates", "兩個座標的次序錯誤"},
	"RowNumberOutOfRange":          {"The row number is out of range, and does not exist", "行號超出範圍，該行不存在"},
	"ColumnNumberOutOfRange":       {"The column number is out of range, and does not exist", "列號超出範圍，該列不存在"},

	// houses and seats
	"house_not_found":       {"No such house", "無此電影院"},
	"invalid_house_size":    {"Rows must be 1-99 and columns 1-26", "行數必須為1至99，列數必須為1至26"},
	"invalid_house_number":  {"Invalid house number", "無效電影院號碼"},
	"no_movie":              {"The house is closed, no movie is playing", "此電影院並無放映電影"},
	"movie_too_long":        {"The movie title is longer than 255 characters", "電影名稱超過255個字元"},
	"seat_unavailable":      {"The seat has already been taken", "座位已被佔用"},
	"seat_out_of_plan":      {"The seat does not exist in this house", "此電影院沒有該座位"},
	"seat_taken":            {"The seat has already been taken", "座位已被佔用"},
	"seat_already_selected": {"The seat is already selected", "座位已被選擇"},
	"too_many_seats":        {"More seats selected than tickets requested", "所選座位多於電影票數量"},
	"selection_incomplete":  {"Fewer seats selected than tickets requested", "所選座位少於電影票數量"},
	"invalid_ticket_count":  {"Ticket count must be at least 1", "電影票數量最少為一"},
	"invalid_ticket_kind":   {"Ticket kind must be ADULT or CHILD", "電影票類別必須為成人或小童"},

	// override commands
	"empty_command":   {"Empty command", "指令為空"},
	"invalid_command": {"Invalid command", "無效指令"},
	"unknown_action":  {"Unknown action", "無效覆蓋動作"},

	// tickets
	"ticket_not_found":            {"No such ticket", "無此電影票"},
	"empty_ticket_number":         {"Invalid ticket number -- ticket number is empty", "無效電影票號碼——電影票號碼為空"},
	"ticket_number_prefix":        {"Invalid ticket number format -- ticket number starts with 'T'", "無效電影票號碼——電影票號碼由「T」開始"},
	"ticket_number_no_digits":     {"Invalid ticket number -- no digits after 'T'", "無效電影票號碼——「T」之後沒有數字"},
	"ticket_number_too_short":     {"Invalid ticket number -- ticket number too short", "無效電影票號碼——電影票號碼太短"},
	"ticket_number_not_decimal":   {"Invalid ticket number -- ticket number should be a single character 'T' followed by decimal numbers", "無效電影票號碼——電影票號碼由「T」開始然後是數字"},
	"ticket_number_leading_zeros": {"Invalid ticket number -- more than 4 leading zeros", "無效電影票號碼——電影票號碼的前置零不可有多於四位"},
	"ticket_number_all_zero":      {"Invalid ticket number -- ticket number is all zero", "無效電影票號碼——電影票號碼不可全部爲零"},

	// auth
	"missing_token":       {"Missing bearer token", "缺少存取權杖"},
	"invalid_token":       {"Invalid or expired token", "權杖無效或已過期"},
	"forbidden":           {"You are not allowed to do this", "你沒有權限進行此操作"},
	"invalid_credentials": {"Wrong email or password", "電郵或密碼錯誤"},
	"email_exists":        {"Email already registered", "電郵已被註冊"},
	"invalid_refresh":     {"Invalid refresh token", "無效的更新權杖"},
	"invalid_email":       {"Invalid email address", "無效電郵地址"},
	"weak_password":       {"Password must be at least 8 characters", "密碼最少需要八個字元"},
	"user_not_found":      {"No such user", "無此用戶"},

	// generic
	"invalid_body":      {"Invalid request body", "無效的請求內容"},
	"invalid_parameter": {"Invalid parameter", "無效參數"},
	"not_found":         {"Not found", "找不到"},
	"too_many_requests": {"Rate limit exceeded", "請求過於頻繁"},
	"internal":          {"Internal server error", "伺服器內部錯誤"},
	"success":           {"Success!", "成功！"},

	// seating chart
	"screen": {"[Screen]", "[銀幕]"},
	"legend": {"' ' empty   'X' sold   '!' reserved", "' ' 空位   'X' 已售   '!' 已預留"},
}
