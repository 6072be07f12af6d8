package constants

// 模板名称
const (
	ViewHome        = "home"
	ViewAbout       = "about"
	ViewProjects    = "projects"
	ViewProject     = "project"
	ViewAddProject  = "addProject"
	ViewEditProject = "editProject"
	ViewLogin       = "login"
	ViewRegister    = "register"
	ViewUserHistory = "userHistory"
	ViewNotFound    = "404"
	ViewError       = "500"
)

// 页面提示信息
const (
	MessageViewNotFound    = "I'm sorry, we're unable to find that view"
	MessageSectorNotFound  = "I'm sorry, we're unable to find projects with a matching sector"
	MessageProjectNotFound = "I'm sorry, we're unable to find a project with that id"
	MessageErrorPrefix     = "I'm sorry, but we have encountered the following error: "
	MessageUserCreated     = "User created"
)
