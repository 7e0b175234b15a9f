package catalog

import "github.com/cookeasy/backend/internal/domain"

var vegetableItems = []domain.CatalogItem{
	{Name: "Cherry Tomatoes", Price: 3.50, Size: "250g", ImageURL: unsplash("photo-1546094096-0df4bcaaa337")},
	{Name: "Finest Dukkah Spiced Cauliflower Kit", Price: 8.50, Size: "895g", ImageURL: unsplash("photo-1568584711075-3d021a7c3ca3")},
	{Name: "Cucumbers Continental Loose", Price: 1.50, Size: "1 Each", ImageURL: unsplash("photo-1449300079323-02e209d9d3a6")},
	{Name: "Tomatoes Greenhouse Truss", Price: 4.90, Size: "approx. 130g", ImageURL: unsplash("photo-1592924357228-91a4daadcfea")},
	{Name: "Red Capsicum Loose", Price: 2.20, Size: "approx. 220g", ImageURL: unsplash("photo-1563565375-f3fdf5efa269")},
	{Name: "Broccoli Medium", Price: 1.80, Size: "approx. 340g", ImageURL: unsplash("photo-1584270354949-c26b0d5b4a0c")},
	{Name: "Loose Brown Onions", Price: 0.90, Size: "approx. 200g", ImageURL: unsplash("photo-1580201092675-a0a6a6cafbb1")},
	{Name: "Onions Red Local", Price: 1.20, Size: "approx. 200g", ImageURL: unsplash("photo-1618512496248-a07fe83aa8cb")},
	{Name: "Baby Broccoli", Price: 2.50, Size: "1 Bunch", ImageURL: unsplash("photo-1583663848850-46af132dc08e")},
	{Name: "Carrots", Price: 1.50, Size: "1Kg", ImageURL: unsplash("photo-1598170845058-32b9d6a5da37")},
	{Name: "Spring Onions", Price: 1.80, Size: "1 Bunch", ImageURL: unsplash("photo-1618881267493-27aa341fa34c")},
	{Name: "Garlic loose", Price: 1.10, Size: "approx. 60g", ImageURL: unsplash("photo-1615477095431-7e87366347f7")},
	{Name: "Potatoes Sweet Gold", Price: 3.00, Size: "approx. 500g", ImageURL: unsplash("photo-1596097635121-14b63b7a7c19")},
	{Name: "Green Zucchini", Price: 1.40, Size: "approx. 200g", ImageURL: unsplash("photo-1593006001098-b80894e489c6")},
	{Name: "Creme Gold Washed Potatoes Loose", Price: 1.20, Size: "approx. 150g", ImageURL: unsplash("photo-1518977676601-b53f82aba655")},
	{Name: "Lettuce Cos Baby Hearts", Price: 3.50, Size: "2 Pack", ImageURL: unsplash("photo-1622206151226-18ca2c9ab4a1")},
	{Name: "Glasshouse Grape Tomatoes", Price: 4.00, Size: "200g", ImageURL: unsplash("photo-1561136594-7f68413baa99")},
	{Name: "Baby Cucumbers", Price: 3.50, Size: "250g", ImageURL: unsplash("photo-1623851502476-d56262dc1407")},
	{Name: "Fresh Loose Cup Mushrooms", Price: 4.50, Size: "approx. 200g", ImageURL: unsplash("photo-1504445851494-b778736eb0db")},
	{Name: "Iceberg Lettuce", Price: 2.80, Size: "1 Each", ImageURL: unsplash("photo-1615485925694-a031e03b7d1e")},
	{Name: "Potatoes Washed", Price: 4.00, Size: "2kg", ImageURL: unsplash("photo-1508313880080-c4bef0730395")},
	{Name: "Lebanese Cucumbers", Price: 1.80, Size: "approx. 160g", ImageURL: unsplash("photo-1591196162299-d4529b489568")},
	{Name: "Brown Onions", Price: 2.50, Size: "1kg", ImageURL: unsplash("photo-1620574387735-3624d75b2dbc")},
	{Name: "Tomatoes Gourmet", Price: 3.20, Size: "approx. 130g", ImageURL: unsplash("photo-1518977956812-cd3dbadaaf31")},
	{Name: "Green Asparagus", Price: 5.00, Size: "1 each", ImageURL: unsplash("photo-1515471209610-dae1c92d8777")},
	{Name: "Family Broccolini", Price: 4.50, Size: "1 each", ImageURL: unsplash("photo-1628773822503-93d3813c6fdb")},
	{Name: "Capsicum Green Loose", Price: 2.00, Size: "approx. 220g", ImageURL: unsplash("photo-1596541613978-5a764d88e62f")},
	{Name: "Perino Entertainer Red Grape Tomatoes", Price: 5.50, Size: "350g", ImageURL: unsplash("photo-1607305387299-a67e4e10a693")},
	{Name: "Fresh Purple Eggplant", Price: 3.00, Size: "approx. 500g", ImageURL: unsplash("photo-1615286922573-45f8b9cb030a")},
	{Name: "Fresh Ginger Loose", Price: 2.50, Size: "approx. 130g", ImageURL: unsplash("photo-1615485290382-441e4d049cb5")},
	{Name: "Mini Asparagus", Price: 4.00, Size: "1 Pack", ImageURL: unsplash("photo-1550989460-0adf9ea622e2")},
	{Name: "Red Royale Potatoes Loose", Price: 1.00, Size: "approx. 170g", ImageURL: unsplash("photo-1566318990159-866810a08e03")},
	{Name: "Sweet Corn", Price: 1.50, Size: "1 Each", ImageURL: unsplash("photo-1551754655-cd27e38d2076")},
	{Name: "Cauliflower Medium", Price: 3.50, Size: "1 Each", ImageURL: unsplash("photo-1568584711275-3487202a27a9")},
	{Name: "Trimmed Celery Prepacked", Price: 3.80, Size: "1 Each", ImageURL: unsplash("photo-1610915662772-24cc42e47264")},
	{Name: "Fresh Celery Sticks Prepacked", Price: 4.20, Size: "300g", ImageURL: unsplash("photo-1610915662499-c4a04689036f")},
	{Name: "Sliced Mushrooms", Price: 3.90, Size: "200g", ImageURL: unsplash("photo-1555546589-3221975bb5b1")},
	{Name: "Green Beans Prepacked", Price: 4.50, Size: "375g", ImageURL: unsplash("photo-1551460395-92736413d80b")},
	{Name: "Kale Bunch Green", Price: 3.50, Size: "1 Each", ImageURL: unsplash("photo-1524179091875-bf99a9a6af57")},
	{Name: "Yellow Capsicum", Price: 2.80, Size: "approx. 220g", ImageURL: unsplash("photo-1613511871787-8d234c98c197")},
}

var meatItems = []domain.CatalogItem{
	{Name: "No Added Hormone Beef Quick Cook Scotch Fillet Steak", Price: 12.00, Size: "170g", ImageURL: unsplash("photo-1600891964092-4316c288032e")},
	{Name: "Beef Scotch Steak Fillet 2 Pack", Price: 26.00, Size: "480g", ImageURL: unsplash("photo-1588347818621-34bd9f764a44")},
	{Name: "No Added Hormone Beef Porterhouse Steak With Thyme And Pepper Butter", Price: 28.50, Size: "500g", ImageURL: unsplash("photo-1619250914856-12a9e224cd26")},
	{Name: "Beef Eye Fillet Steak", Price: 32.00, Size: "450g", ImageURL: unsplash("photo-1558030006-450671960d72")},
	{Name: "No Added Hormone Beef Porterhouse Steak 2 Pack", Price: 25.00, Size: "450g", ImageURL: unsplash("photo-1603048297172-c92544798d5e")},
	{Name: "Beef Eye Fillet Steak Small Pack", Price: 18.00, Size: "300g", ImageURL: unsplash("photo-1504973960431-1c46b84542d5")},
	{Name: "Graze Grassfed Beef New York Strip Steak", Price: 22.00, Size: "380g", ImageURL: unsplash("photo-1600891964092-4316c288032e")},
	{Name: "Graze Grassfed Beef Scotch Fillet Steak", Price: 16.50, Size: "250g", ImageURL: unsplash("photo-1544378730-8b5104b1378b")},
	{Name: "Beef Chuck Casserole Steak", Price: 19.50, Size: "850g", ImageURL: unsplash("photo-1534939561126-855b8675edd7")},
	{Name: "Finest Carbon Neutral Beef Scotch Fillet Steak", Price: 24.00, Size: "375g", ImageURL: unsplash("photo-1551028150-64b9f398f678")},
	{Name: "No Added Hormone Beef Quick Cook Porterhouse Steak", Price: 14.00, Size: "180g", ImageURL: unsplash("photo-1607623814075-e51df1bdc82f")},
	{Name: "Beef Gravy", Price: 8.00, Size: "800g", ImageURL: unsplash("photo-1603048588665-791ca8aea617")},
	{Name: "Beef Sizzle Steak", Price: 15.00, Size: "400g", ImageURL: unsplash("photo-1588168333986-5078d3ae3976")},
	{Name: "No Added Hormone Beef Rump Medallions", Price: 18.00, Size: "300g", ImageURL: unsplash("photo-1615937657715-bc7b4b7962c1")},
}

var fruitItems = []domain.CatalogItem{
	{Name: "Blackberries", Price: 5.00, Size: "125g", ImageURL: unsplash("photo-1596591606975-97ee5cef3a1e")},
	{Name: "Raspberries", Price: 4.00, Size: "125g", ImageURL: unsplash("photo-1577009315570-5b583279147a")},
	{Name: "Pink Lady Apples Medium", Price: 1.50, Size: "approx. 200g", ImageURL: unsplash("photo-1570913149827-d2ac84ab3f9a")},
	{Name: "R2e2 Mangoes", Price: 3.00, Size: "1 Each", ImageURL: unsplash("photo-1601493700631-2b16ec4b4716")},
	{Name: "Eureka Blueberries Premium", Price: 6.50, Size: "200g", ImageURL: unsplash("photo-1498557850523-fd3d118b962e")},
	{Name: "Lemons", Price: 2.00, Size: "1 Each", ImageURL: unsplash("photo-1595855709915-f761a2517830")},
	{Name: "Medium Calypso Mangoes", Price: 2.70, Size: "1 Each", ImageURL: unsplash("photo-1553279768-865429fa0078")},
	{Name: "Hass Avocados", Price: 2.00, Size: "1 Each", ImageURL: unsplash("photo-1523049673856-3eb43db958cd")},
	{Name: "Limes Medium Loose", Price: 1.80, Size: "1 each", ImageURL: unsplash("photo-1594313016519-640ed4744312")},
	{Name: "Green Kiwifruit", Price: 1.20, Size: "1 Each", ImageURL: unsplash("photo-1585059895524-72359e06138a")},
	{Name: "Bananas", Price: 0.72, Size: "approx. 180g", ImageURL: unsplash("photo-1587132137056-bfbf0166836e")},
	{Name: "Blueberries", Price: 4.00, Size: "170g", ImageURL: unsplash("photo-1498557850523-fd3d118b962e")},
	{Name: "Strawberries", Price: 4.00, Size: "250g", ImageURL: unsplash("photo-1464965911861-746a04b4bca6")},
	{Name: "Orange Navel", Price: 1.05, Size: "approx. 250g", ImageURL: unsplash("photo-1582979512210-99b6a53385f9")},
	{Name: "Seedless Watermelon Cut", Price: 4.50, Size: "approx. 1.8kg", ImageURL: unsplash("photo-1587049352846-4a222e784d38")},
	{Name: "Cherries Prepack", Price: 7.00, Size: "300g", ImageURL: unsplash("photo-1528821154947-1aa3d1b74941")},
	{Name: "White Seedless Grapes", Price: 9.90, Size: "approx. 1kg", ImageURL: unsplash("photo-1537640538965-1756e1f59227")},
	{Name: "Apple Granny Smith Medium", Price: 0.83, Size: "approx. 170g", ImageURL: unsplash("photo-1579613832125-5d34813cdf43")},
	{Name: "Yellow Nectarines", Price: 0.47, Size: "approx. 120g", ImageURL: unsplash("photo-1603051756185-1d4187c33748")},
	{Name: "Mandarins Afourer", Price: 0.55, Size: "approx. 130g", ImageURL: unsplash("photo-1621508654686-809f23efdabc")},
	{Name: "Topless Pineapple", Price: 5.50, Size: "1 each", ImageURL: unsplash("photo-1550258987-190a2d41a8ba")},
	{Name: "Pink Lady Apples", Price: 7.50, Size: "1kg", ImageURL: unsplash("photo-1630563451961-ac2ff2767cb5")},
	{Name: "White Nectarines", Price: 0.58, Size: "approx. 150g", ImageURL: unsplash("photo-1596229989932-a50352a420b7")},
	{Name: "Pear Packham", Price: 1.18, Size: "approx. 240g", ImageURL: unsplash("photo-1514756331096-242f20484696")},
	{Name: "Peaches Yellow", Price: 0.59, Size: "approx. 120g", ImageURL: unsplash("photo-1605197585662-588b39418b76")},
	{Name: "Rockmelon Whole", Price: 3.50, Size: "1 Each", ImageURL: unsplash("photo-1571575173772-bb32ec5e8b7f")},
	{Name: "Papaya Loose", Price: 4.50, Size: "1 each", ImageURL: unsplash("photo-1517260739337-6799d2df8a21")},
	{Name: "Pomegranate Medium", Price: 5.50, Size: "1 each", ImageURL: unsplash("photo-1518386407426-191c0a59b67f")},
}

var seafoodItems = []domain.CatalogItem{
	{Name: "Tasmanian Salmon Portions Skin On 4 Pack", Price: 17.50, Size: "460g", ImageURL: unsplash("photo-1599084993091-1e811e2f3a69")},
	{Name: "Tasmanian Salmon Portions Skin Off 4 Pack", Price: 19.00, Size: "460g", ImageURL: unsplash("photo-1519708227418-c8fd9a32b7a2")},
	{Name: "Deli Thawed Australian Cooked Black Tiger Prawns Extra Large", Price: 9.75, Size: "approx. 250g", ImageURL: unsplash("photo-1565680018434-b513d5e5fd47")},
	{Name: "Deli Fresh Tasmanian Salmon Portions Skin On", Price: 6.80, Size: "approx. 200g", ImageURL: unsplash("photo-1599084993091-1e811e2f3a69")},
	{Name: "Deli Australian Thawed Raw Extra Large Black Tiger Prawns", Price: 6.50, Size: "approx. 250g", ImageURL: unsplash("photo-1559058789-672da06263d8")},
	{Name: "Deli Thawed Basa Fillets", Price: 1.80, Size: "approx. 200g", ImageURL: unsplash("photo-1519708227418-c8fd9a32b7a2")},
	{Name: "Deli Thawed Barramundi Fillets", Price: 6.30, Size: "approx. 350g", ImageURL: unsplash("photo-1519708227418-c8fd9a32b7a2")},
	{Name: "Prawns Raw Peeled", Price: 12.50, Size: "260g", ImageURL: unsplash("photo-1623962520499-03f9808f1c99")},
	{Name: "Cooked Prawns With Cocktail Sauce", Price: 11.00, Size: "260g", ImageURL: unsplash("photo-1625944525533-4c2cbc887d50")},
	{Name: "Mussels In Oil", Price: 1.70, Size: "85g", ImageURL: unsplash("photo-1613564834361-9436948817d1")},
	{Name: "Seafood Sauce", Price: 2.50, Size: "230g", ImageURL: unsplash("photo-1607532941433-304659e8198a")},
	{Name: "Finest Double Smoked Salmon", Price: 11.00, Size: "150g", ImageURL: unsplash("photo-1585672840545-d8f9947814b1")},
	{Name: "Tasmanian Salmon Marinated Portions Teriyaki", Price: 16.00, Size: "325g", ImageURL: unsplash("photo-1467003909585-2f8a7270028d")},
}

var bakeryItems = []domain.CatalogItem{
	{Name: "Finest Brown Butter & Jamaican Rum Fruit Mince Pies", Price: 7.50, Size: "350g", Brand: "Coles", ImageURL: unsplash("photo-1607478900766-efe13248b125")},
	{Name: "Golden Crumpet Square 6 Pack", Price: 5.00, Size: "425g", Brand: "Golden", ImageURL: unsplash("photo-1626127117565-d60a5d4d3d2c")},
	{Name: "Tip Top Muffins English Original", Price: 6.40, Size: "400g", Brand: "Tip Top", ImageURL: unsplash("photo-1607958996333-41aef7caefaa")},
	{Name: "Tip Top Gourmet Bun 4 Pack", Price: 4.70, Size: "220g", Brand: "Tip Top", ImageURL: unsplash("photo-1557022272-3c8c7d81216d")},
	{Name: "Slice X Chupa Balls Strawberry & Cream", Price: 6.00, Size: "160g", Brand: "Slice", ImageURL: unsplash("photo-1598268121084-c3c7c8e5f324")},
	{Name: "Bakery Sponge Roll Mini Choc 6 Pack", Price: 4.00, Size: "250g", Brand: "Coles", ImageURL: unsplash("photo-1589119908995-c6837fa14848")},
	{Name: "Bakery Vegemite Scroll", Price: 2.75, Size: "1 Each", Brand: "Coles", ImageURL: unsplash("photo-1617065977533-3164a2f87a8b")},
	{Name: "Bakery Stonebaked White Sourdough Vienna", Price: 4.50, Size: "1 Each", Brand: "Coles", ImageURL: unsplash("photo-1585478259715-876ac5d8d35a")},
	{Name: "Iced Donuts", Price: 3.25, Size: "6 pack", Brand: "Coles", ImageURL: unsplash("photo-1551024709-8f23befc6f87")},
	{Name: "Bakery Indulgent Choc 40% Choc Chip Cookie", Price: 3.00, Size: "6 Pack", Brand: "Coles", ImageURL: unsplash("photo-1499636138143-bd649043ce52")},
	{Name: "Bakery Hawaiian Pizza Roll", Price: 3.50, Size: "2 pack", Brand: "Coles", ImageURL: unsplash("photo-1513104890138-7c749659a591")},
}

var dairyItems = []domain.CatalogItem{
	{Name: "Pauls Custard Vanilla", Price: 5.20, Size: "1kg", Brand: "Pauls", ImageURL: unsplash("photo-1563636619-e9143da7973b")},
	{Name: "The Organic Milk Co Organic Mozzarella Shred", Price: 6.00, Size: "250g", Brand: "The Organic Milk Co", ImageURL: unsplash("photo-1486297678162-eb2a19b0a32d")},
	{Name: "Riverina Haloumi", Price: 5.80, Size: "180g", Brand: "Riverina", ImageURL: unsplash("photo-1624806992098-1971788e5d95")},
	{Name: "Primo Reserve Cheese Kransky", Price: 4.90, Size: "250g", Brand: "Primo", ImageURL: unsplash("photo-1595486025265-27a3d3c73708")},
	{Name: "Devondale Regular Butter Blend", Price: 7.50, Size: "500g", Brand: "Devondale", ImageURL: unsplash("photo-1589985270826-4b7bb135bc9d")},
	{Name: "Primo Reserve Ham Off The Bone Sliced Deli Meat", Price: 5.50, Size: "100g", Brand: "Primo", ImageURL: unsplash("photo-1524182576066-10905c55c5fc")},
	{Name: "Arla Protein Pudding Chocolate", Price: 3.00, Size: "200g", Brand: "Arla", ImageURL: unsplash("photo-1563805042-7684c019e1cb")},
	{Name: "Siggi's Yoghurt Pouch Strawberry", Price: 1.35, Size: "150g", Brand: "Siggi's", ImageURL: unsplash("photo-1571212515416-f22354cbaf75")},
	{Name: "Surf Coast Cracking Good Ultimate Free Range Eggs 12 Pack", Price: 7.00, Size: "700g", Brand: "Surf Coast", ImageURL: unsplash("photo-1582722872445-44dc5f7e3c8f")},
	{Name: "Yumi's Traditional Hommus Dip Dairy & Gluten Free", Price: 4.50, Size: "200g", Brand: "Yumi's", ImageURL: unsplash("photo-1630409346824-4f0e7b04313d")},
	{Name: "Provedore Prosciutto", Price: 7.50, Size: "100g", Brand: "Provedore", ImageURL: unsplash("photo-1529563021893-cc83c992d75e")},
	{Name: "Divine Classic Creme Caramel Dessert 2 pack", Price: 4.00, Size: "150g", Brand: "Divine", ImageURL: unsplash("photo-1517424619713-1b9138407981")},
	{Name: "Black Swan Tzatziki Dip", Price: 4.50, Size: "200g", Brand: "Black Swan", ImageURL: unsplash("photo-1634747997637-29013c77d61b")},
}
