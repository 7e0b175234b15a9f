package domain

// Tab is a bottom navigation tab
type Tab string

const (
	TabHome       Tab = "Home"
	TabOrders     Tab = "Orders"
	TabCategories Tab = "Categories"
	TabProfile    Tab = "Profile"
)

// HomeView is a screen inside the Home tab
type HomeView string

const (
	HomeDashboard      HomeView = "Dashboard"
	HomeUpload         HomeView = "Upload"
	HomeReview         HomeView = "Review"
	HomeProductDetail  HomeView = "ProductDetail"
	HomeCategoryDetail HomeView = "CategoryDetail"
	HomeRecipeDetail   HomeView = "RecipeDetail"
)

// ShopView is a step of the cart overlay
type ShopView string

const (
	ShopCart    ShopView = "Cart"
	ShopPayment ShopView = "Payment"
	ShopSuccess ShopView = "Success"
)

// ProfileView is a screen inside the Profile tab
type ProfileView string

const (
	ProfileMenu      ProfileView = "Menu"
	ProfileOrders    ProfileView = "Orders"
	ProfileAddresses ProfileView = "Addresses"
	ProfilePayments  ProfileView = "Payments"
	ProfileHelp      ProfileView = "Help"
)

// AdminView is a section of the admin console
type AdminView string

const (
	AdminDashboard AdminView = "Dashboard"
	AdminProducts  AdminView = "Products"
	AdminOrders    AdminView = "Orders"
	AdminRecipes   AdminView = "Recipes"
	AdminStock     AdminView = "Stock"
)

// NavigationArea names one of the independent screen state machines
type NavigationArea string

const (
	AreaTab     NavigationArea = "tab"
	AreaHome    NavigationArea = "home"
	AreaShop    NavigationArea = "shop"
	AreaProfile NavigationArea = "profile"
	AreaAdmin   NavigationArea = "admin"
)

// NavigationState is the current screen of every area plus the cart overlay flag
type NavigationState struct {
	Tab      Tab         `json:"tab"`
	Home     HomeView    `json:"home"`
	Shop     ShopView    `json:"shop"`
	CartOpen bool        `json:"cartOpen"`
	Profile  ProfileView `json:"profile"`
	Admin    AdminView   `json:"admin"`
}

// InitialNavigation is where a fresh session starts
func InitialNavigation() NavigationState {
	return NavigationState{
		Tab:     TabHome,
		Home:    HomeDashboard,
		Shop:    ShopCart,
		Profile: ProfileMenu,
		Admin:   AdminDashboard,
	}
}
