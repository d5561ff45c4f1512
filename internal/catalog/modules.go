package catalog

// Modules is the full curriculum in sequence order.
var Modules = []Module{
	{ID: 1, Title: "Front-End Web Development", Category: "Front-End Fundamentals", Description: "Introduction to front-end web development concepts"},
	{ID: 2, Title: "Introduction to HTML", Category: "Front-End Fundamentals", Description: "Learning HTML basics and document structure"},
	{ID: 3, Title: "Intermediate HTML", Category: "Front-End Fundamentals", Description: "Advanced HTML elements and semantic markup"},
	{ID: 4, Title: "Multi-Page Websites", Category: "Front-End Fundamentals", Description: "Creating and linking multiple HTML pages"},
	{ID: 5, Title: "Introduction to CSS", Category: "Front-End Fundamentals", Description: "Basics of styling web pages with CSS"},
	{ID: 6, Title: "CSS Properties", Category: "Front-End Fundamentals", Description: "Working with various CSS properties and values"},
	{ID: 7, Title: "Intermediate CSS", Category: "Front-End Fundamentals", Description: "Advanced CSS techniques and selectors"},
	{ID: 8, Title: "Advanced CSS", Category: "Front-End Fundamentals", Description: "Complex CSS layouts and animations"},
	{ID: 9, Title: "Flexbox", Category: "Front-End Fundamentals", Description: "Creating flexible layouts with CSS Flexbox"},
	{ID: 10, Title: "Grid", Category: "Front-End Fundamentals", Description: "Building grid-based layouts with CSS Grid"},
	{ID: 11, Title: "Bootstrap", Category: "Front-End Fundamentals", Description: "Using the Bootstrap framework for responsive design"},
	{ID: 12, Title: "Web Design School - Create a Website that People Love", Category: "Front-End Fundamentals", Description: "Principles of effective web design and user experience"},
	{ID: 13, Title: "Capstone Project 2 - Personal Site", Category: "Front-End Fundamentals", Description: "Building a complete personal website project"},
	{ID: 14, Title: "Introduction to Javascript ES6", Category: "JavaScript & DOM", Description: "Learning JavaScript fundamentals and ES6 features"},
	{ID: 15, Title: "Intermediate Javascript", Category: "JavaScript & DOM", Description: "Advanced JavaScript concepts and programming techniques"},
	{ID: 16, Title: "The Document Object Model (DOM)", Category: "JavaScript & DOM", Description: "Manipulating HTML documents with JavaScript"},
	{ID: 17, Title: "Boss Level Challenge 1 - The Dicee Game", Category: "JavaScript & DOM", Description: "Creating an interactive dice game with JavaScript"},
	{ID: 18, Title: "Advanced Javascript and DOM Manipulation", Category: "JavaScript & DOM", Description: "Complex DOM manipulation and event handling"},
	{ID: 19, Title: "jQuery", Category: "JavaScript & DOM", Description: "Using jQuery to simplify JavaScript development"},
	{ID: 20, Title: "Boss Level Challenge 2 - The Simon Game", Category: "JavaScript & DOM", Description: "Building a memory game with advanced JavaScript"},
	{ID: 21, Title: "The Unix Command Line", Category: "Backend Development", Description: "Learning essential command line skills for developers"},
	{ID: 22, Title: "Backend Web Development", Category: "Backend Development", Description: "Introduction to server-side programming"},
	{ID: 23, Title: "Node.js", Category: "Backend Development", Description: "Building server-side applications with Node.js"},
	{ID: 24, Title: "Express.js with Node.js", Category: "Backend Development", Description: "Creating web applications with the Express framework"},
	{ID: 25, Title: "APIs - Application Programming Interfaces", Category: "Backend Development", Description: "Working with and creating RESTful APIs"},
	{ID: 26, Title: "Git, Github and Version Control", Category: "Backend Development", Description: "Managing code with version control systems"},
	{ID: 27, Title: "EJS", Category: "Backend Development", Description: "Using Embedded JavaScript templates for dynamic content"},
	{ID: 28, Title: "Boss Level Challenge 3 - Blog Website", Category: "Backend Development", Description: "Creating a full-featured blog with Node.js"},
	{ID: 29, Title: "Databases", Category: "Databases & Full Stack", Description: "Introduction to database concepts and systems"},
	{ID: 30, Title: "SQL", Category: "Databases & Full Stack", Description: "Working with relational databases and SQL"},
	{ID: 31, Title: "MongoDB", Category: "Databases & Full Stack", Description: "Using MongoDB NoSQL database"},
	{ID: 32, Title: "Mongoose", Category: "Databases & Full Stack", Description: "MongoDB object modeling for Node.js"},
	{ID: 33, Title: "Putting Everything Together", Category: "Databases & Full Stack", Description: "Combining front-end and back-end technologies"},
	{ID: 34, Title: "Deploying Your Web Application", Category: "Databases & Full Stack", Description: "Publishing web applications to production environments"},
	{ID: 35, Title: "Boss Level Challenge 4 - Blog Website Upgrade", Category: "Databases & Full Stack", Description: "Enhancing a blog with database functionality"},
	{ID: 36, Title: "Build Your Own RESTful API From Scratch", Category: "Databases & Full Stack", Description: "Creating a complete API with Node.js and databases"},
	{ID: 37, Title: "Authentication & Security", Category: "Databases & Full Stack", Description: "Implementing user authentication and security measures"},
	{ID: 38, Title: "React.js", Category: "Advanced Topics", Description: "Building user interfaces with React"},
	{ID: 39, Title: "Web3 Decentralised App (DApp) Development with the Internet Computer", Category: "Advanced Topics", Description: "Creating blockchain-based decentralized applications"},
	{ID: 40, Title: "Build Your First DeFi (Decentralised Finance) DApp - DBANK", Category: "Advanced Topics", Description: "Developing a decentralized finance application"},
	{ID: 41, Title: "Deploying to the ICP Live Blockchain", Category: "Advanced Topics", Description: "Publishing applications to the Internet Computer blockchain"},
	{ID: 42, Title: "Building DApps on ICP with a React Frontend", Category: "Advanced Topics", Description: "Combining React with blockchain backends"},
	{ID: 43, Title: "Create Your Own Crypto Token", Category: "Advanced Topics", Description: "Developing and deploying a cryptocurrency token"},
	{ID: 44, Title: "Minting NFTs and Building an NFT Marketplace like OpenSea", Category: "Advanced Topics", Description: "Creating and trading non-fungible tokens"},
	{ID: 45, Title: "Optional Module Ask Angela Anything", Category: "Advanced Topics", Description: "Q&A session covering various web development topics"},
	{ID: 46, Title: "Next Steps", Category: "Advanced Topics", Description: "Guidance for continuing your web development journey"},
}
